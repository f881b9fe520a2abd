// ABOUTME: Tests for the offer endpoints of the API client
// ABOUTME: Covers money/item offer payloads and accept/refuse transitions

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateOffer_Money(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/offers/" {
			t.Errorf("expected POST /offers/, got %s %s", r.Method, r.URL.Path)
		}
		var raw map[string]json.RawMessage
		json.NewDecoder(r.Body).Decode(&raw)
		if _, ok := raw["item_offered"]; ok {
			t.Error("money offer must not carry item_offered")
		}
		if _, ok := raw["money_amount"]; !ok {
			t.Error("money offer must carry money_amount")
		}
		amount := decimal.NewFromInt(50)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Offer{
			ID:          1,
			ItemDesired: 4,
			OfferType:   OfferTypeMoney,
			MoneyAmount: &amount,
			Offerer:     "joao",
			Status:      OfferPending,
		})
	}))
	defer server.Close()

	amount := decimal.NewFromInt(50)
	c := newTestClient(t, server.URL)
	offer, err := c.CreateOffer(context.Background(), OfferInput{
		ItemDesired: 4,
		OfferType:   OfferTypeMoney,
		MoneyAmount: &amount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.MoneyAmount == nil || !offer.MoneyAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected money_amount 50, got %v", offer.MoneyAmount)
	}
	if offer.ItemOffered != nil {
		t.Error("expected item_offered to be absent on a money offer")
	}
}

func TestCreateOffer_Item(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input OfferInput
		json.NewDecoder(r.Body).Decode(&input)
		if input.ItemOffered == nil || *input.ItemOffered != 9 {
			t.Errorf("expected item_offered 9, got %v", input.ItemOffered)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Offer{
			ID:          2,
			ItemDesired: input.ItemDesired,
			ItemOffered: input.ItemOffered,
			OfferType:   OfferTypeItem,
			Status:      OfferPending,
		})
	}))
	defer server.Close()

	offered := 9
	c := newTestClient(t, server.URL)
	offer, err := c.CreateOffer(context.Background(), OfferInput{
		ItemDesired: 4,
		OfferType:   OfferTypeItem,
		ItemOffered: &offered,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.MoneyAmount != nil {
		t.Error("expected money_amount to be absent on an item offer")
	}
}

func TestMoneyAmount_DecodesStringWireFormat(t *testing.T) {
	// Django serializes DecimalField as a quoted string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":3,"item_desired":4,"offer_type":"money","money_amount":"75.50","status":"pending"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	offer, err := c.Offer(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := decimal.RequireFromString("75.50")
	if offer.MoneyAmount == nil || !offer.MoneyAmount.Equal(want) {
		t.Errorf("expected money_amount 75.50, got %v", offer.MoneyAmount)
	}
}

func TestAcceptOffer(t *testing.T) {
	offered := 9
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/offers/5/accept/" {
			t.Errorf("expected POST /offers/5/accept/, got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Offer{
			ID:          5,
			ItemDesired: 4,
			ItemOffered: &offered,
			OfferType:   OfferTypeItem,
			Status:      OfferAccepted,
		})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	offer, err := c.AcceptOffer(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.Status != OfferAccepted {
		t.Errorf("expected status accepted, got %s", offer.Status)
	}
}

func TestRefuseOffer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/offers/5/refuse/" {
			t.Errorf("expected POST /offers/5/refuse/, got %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Offer{ID: 5, ItemDesired: 4, Status: OfferRefused})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	offer, err := c.RefuseOffer(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.Status != OfferRefused {
		t.Errorf("expected status refused, got %s", offer.Status)
	}
}

func TestAcceptOffer_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "only the item owner can accept"})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.AcceptOffer(context.Background(), 5)
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
}

func TestDeleteOffer_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/offers/5/" {
			t.Errorf("expected DELETE /offers/5/, got %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if err := c.DeleteOffer(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
