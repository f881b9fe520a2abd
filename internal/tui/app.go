// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Routes input to screens and reconciles store state on every change

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/guard"
	"github.com/Nelson-esilva/Trade-Site/internal/store"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/catalog"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/forms"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/icons"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/offers"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/styles"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenItemDetail
	ScreenLogin
	ScreenRegister
	ScreenMyItems
	ScreenItemForm
	ScreenOffers
	ScreenOfferForm
	ScreenProfile
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping layout math
)

// screenRequirements lists what the guard demands per screen.
// Screens absent from the map are open to everyone.
var screenRequirements = map[Screen]guard.Requirements{
	ScreenLogin:     {RequireAuth: false},
	ScreenRegister:  {RequireAuth: false},
	ScreenMyItems:   {RequireAuth: true},
	ScreenItemForm:  {RequireAuth: true},
	ScreenOffers:    {RequireAuth: true},
	ScreenOfferForm: {RequireAuth: true},
	ScreenProfile:   {RequireAuth: true},
}

// routeName returns the path-like name a login redirect carries
func routeName(s Screen) string {
	switch s {
	case ScreenCatalog:
		return "/"
	case ScreenItemDetail:
		return "/items"
	case ScreenLogin:
		return "/login"
	case ScreenRegister:
		return "/register"
	case ScreenMyItems:
		return "/my-items"
	case ScreenItemForm:
		return "/my-items/edit"
	case ScreenOffers:
		return "/offers"
	case ScreenOfferForm:
		return "/offers/new"
	case ScreenProfile:
		return "/profile"
	default:
		return "/"
	}
}

// storeChangedMsg is sent when the store publishes a new snapshot
type storeChangedMsg struct{}

// initialDataLoadedMsg is sent once the startup loads finish
type initialDataLoadedMsg struct{}

// sessionChangedMsg is sent after login/register/logout completes
type sessionChangedMsg struct {
	err error
}

// actionDoneMsg is sent after a fire-and-forget store action finishes;
// the outcome is already reflected in store state
type actionDoneMsg struct {
	err error
}

// itemSavedMsg is sent after an item create or update completes
type itemSavedMsg struct {
	err error
}

// offerCreatedMsg is sent after an offer is created
type offerCreatedMsg struct {
	err error
}

// App is the root model for the TUI
type App struct {
	store   *store.Store
	changes <-chan struct{}
	screen  Screen
	width   int
	height  int

	// Login redirects return here once the session is established
	returnTo Screen
	// Navigation deferred while the session is still resolving
	pendingNav Screen
	hasPending bool

	// Child models
	catalogList *catalog.Catalog
	myItems     *catalog.Catalog
	offerList   *offers.Offers
	loginForm   *forms.Login
	registerFrm *forms.Register
	itemForm    *forms.ItemForm
	offerForm   *forms.OfferForm

	// Item being edited (nil means a new listing)
	editingItem *client.Item
}

// New creates a new TUI application bound to the store
func New(st *store.Store) *App {
	return &App{
		store:       st,
		changes:     st.Subscribe(),
		screen:      ScreenCatalog,
		returnTo:    ScreenCatalog,
		catalogList: catalog.New(catalog.ModeCatalog),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadInitialData(), a.waitForChange())
}

// waitForChange re-arms the store subscription
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-a.changes
		return storeChangedMsg{}
	}
}

// loadInitialData primes the store at startup
func (a *App) loadInitialData() tea.Cmd {
	return func() tea.Msg {
		a.store.LoadInitialData(context.Background())
		return initialDataLoadedMsg{}
	}
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.forwardSize(msg)
		return a, nil

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Route to current screen
		switch a.screen {
		case ScreenCatalog:
			return a.updateCatalog(msg)
		case ScreenItemDetail:
			return a.updateItemDetail(msg)
		case ScreenLogin:
			return a.updateForm(msg)
		case ScreenRegister:
			return a.updateForm(msg)
		case ScreenMyItems:
			return a.updateMyItems(msg)
		case ScreenItemForm:
			return a.updateForm(msg)
		case ScreenOffers:
			return a.updateOffers(msg)
		case ScreenOfferForm:
			return a.updateForm(msg)
		case ScreenProfile:
			return a.updateProfile(msg)
		}

	case storeChangedMsg:
		a.syncChildren()
		cmds := []tea.Cmd{a.waitForChange()}
		if cmd := a.retryPendingNav(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case initialDataLoadedMsg:
		a.syncChildren()
		return a, nil

	case catalog.ItemSelectedMsg:
		return a, tea.Batch(a.loadItem(msg.ID), a.navigate(ScreenItemDetail))

	case catalog.SearchRequestedMsg:
		return a, a.searchItems(msg.Query, msg.Category)

	case catalog.CancelledMsg:
		if a.screen == ScreenMyItems {
			return a, a.navigate(ScreenCatalog)
		}
		return a, tea.Quit

	case offers.AcceptRequestedMsg:
		return a, a.acceptOffer(msg.ID)

	case offers.RefuseRequestedMsg:
		return a, a.refuseOffer(msg.ID)

	case offers.WithdrawRequestedMsg:
		return a, a.withdrawOffer(msg.ID)

	case offers.CancelledMsg:
		return a, a.navigate(ScreenCatalog)

	case forms.LoginSubmittedMsg:
		return a, a.login(msg.Username, msg.Password)

	case forms.LoginCancelledMsg, forms.RegisterCancelledMsg:
		a.loginForm = nil
		a.registerFrm = nil
		return a, a.navigate(ScreenCatalog)

	case forms.RegisterSubmittedMsg:
		return a, a.register(msg.Input)

	case forms.ItemSubmittedMsg:
		return a, a.saveItem(msg.ID, msg.Input)

	case forms.ItemCancelledMsg:
		a.itemForm = nil
		a.editingItem = nil
		return a, a.navigate(ScreenMyItems)

	case forms.OfferSubmittedMsg:
		return a, a.createOffer(msg.Input)

	case forms.OfferCancelledMsg:
		a.offerForm = nil
		return a, a.navigate(ScreenItemDetail)

	case sessionChangedMsg:
		if msg.err != nil {
			// Error is in the store; keep the form open
			return a, nil
		}
		a.loginForm = nil
		a.registerFrm = nil
		target := a.returnTo
		a.returnTo = ScreenCatalog
		return a, a.navigate(target)

	case itemSavedMsg:
		if msg.err != nil {
			return a, nil
		}
		a.itemForm = nil
		a.editingItem = nil
		return a, a.navigate(ScreenMyItems)

	case offerCreatedMsg:
		if msg.err != nil {
			return a, nil
		}
		a.offerForm = nil
		return a, a.navigate(ScreenCatalog)

	case actionDoneMsg:
		// Store state already reflects the outcome either way
		return a, nil

	default:
		// Forward unknown messages to the active form (needed for huh internals)
		if a.activeForm() != nil {
			return a.updateForm(msg)
		}
	}

	return a, nil
}

// forwardSize passes the window size to whichever children exist
func (a *App) forwardSize(msg tea.WindowSizeMsg) {
	if a.catalogList != nil {
		a.catalogList.Update(msg)
	}
	if a.myItems != nil {
		a.myItems.Update(msg)
	}
	if a.offerList != nil {
		a.offerList.Update(msg)
	}
}

// syncChildren pushes the latest store snapshot into the child models
func (a *App) syncChildren() {
	state := a.store.State()

	if a.catalogList != nil {
		a.catalogList.SetItems(state.Items)
		a.catalogList.SetLoading(state.LoadingItems)
	}
	if a.myItems != nil {
		if state.User != nil {
			a.myItems.SetViewer(state.User.Username)
		}
		a.myItems.SetItems(state.Items)
		a.myItems.SetLoading(state.LoadingItems)
	}
	if a.offerList != nil {
		a.offerList.SetOffers(state.Offers)
		a.offerList.SetOwnedItems(state.Items)
	}
}

// retryPendingNav retries a navigation that was deferred while the
// session was still loading
func (a *App) retryPendingNav() tea.Cmd {
	if !a.hasPending || a.store.State().Loading {
		return nil
	}
	target := a.pendingNav
	a.hasPending = false
	return a.navigate(target)
}

// navigate runs the guard and enters the target screen
func (a *App) navigate(target Screen) tea.Cmd {
	state := a.store.State()
	sess := guard.Session{
		IsAuthenticated: state.IsAuthenticated,
		Loading:         state.Loading,
		User:            state.User,
	}

	if req, guarded := screenRequirements[target]; guarded {
		decision := guard.Check(sess, req, routeName(target))
		switch decision.Verdict {
		case guard.ShowLoading:
			a.pendingNav = target
			a.hasPending = true
			return nil
		case guard.RedirectLogin:
			a.returnTo = target
			target = ScreenLogin
		case guard.RedirectHome:
			target = ScreenCatalog
		}
	}

	return a.enter(target)
}

// enter sets up the target screen's child model and switches to it
func (a *App) enter(target Screen) tea.Cmd {
	state := a.store.State()
	a.screen = target

	switch target {
	case ScreenLogin:
		a.loginForm = forms.NewLogin()
		return a.loginForm.Init()

	case ScreenRegister:
		a.registerFrm = forms.NewRegister()
		return a.registerFrm.Init()

	case ScreenMyItems:
		a.myItems = catalog.New(catalog.ModeMine)
		if state.User != nil {
			a.myItems.SetViewer(state.User.Username)
		}
		a.myItems.SetItems(state.Items)
		return nil

	case ScreenItemForm:
		a.itemForm = forms.NewItem(a.editingItem)
		return a.itemForm.Init()

	case ScreenOffers:
		viewer := ""
		if state.User != nil {
			viewer = state.User.Username
		}
		a.offerList = offers.New(viewer)
		a.offerList.SetOffers(state.Offers)
		a.offerList.SetOwnedItems(state.Items)
		return a.loadOffers()

	case ScreenOfferForm:
		if state.CurrentItem == nil {
			a.screen = ScreenCatalog
			return nil
		}
		a.offerForm = forms.NewOffer(state.CurrentItem.ID, a.ownAvailableItems(state))
		return a.offerForm.Init()
	}

	return nil
}

// ownAvailableItems returns the viewer's listings that can be offered
// in trade (available, and not the item being bid on)
func (a *App) ownAvailableItems(state store.State) []client.Item {
	if state.User == nil {
		return nil
	}
	var own []client.Item
	for _, item := range state.Items {
		if item.Owner != state.User.Username {
			continue
		}
		if item.Status != client.ItemAvailable {
			continue
		}
		if state.CurrentItem != nil && item.ID == state.CurrentItem.ID {
			continue
		}
		own = append(own, item)
	}
	return own
}

func (a *App) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := a.store.State()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "c":
		a.store.ClearError()
		return a, nil
	case "R":
		return a, a.refreshItems()
	case "m":
		return a, a.navigate(ScreenMyItems)
	case "o":
		return a, a.navigate(ScreenOffers)
	case "p":
		return a, a.navigate(ScreenProfile)
	case "i":
		if !state.IsAuthenticated {
			return a, a.navigate(ScreenLogin)
		}
	case "u":
		if !state.IsAuthenticated {
			return a, a.navigate(ScreenRegister)
		}
	case "x":
		if state.IsAuthenticated {
			return a, a.logout()
		}
	}

	if a.catalogList == nil {
		return a, nil
	}
	model, cmd := a.catalogList.Update(msg)
	a.catalogList = model.(*catalog.Catalog)
	return a, cmd
}

func (a *App) updateItemDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := a.store.State()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "c":
		a.store.ClearError()
		return a, nil
	case "b", "esc":
		return a, a.navigate(ScreenCatalog)
	case "o":
		if state.CurrentItem != nil && state.CurrentItem.Status == client.ItemAvailable && !a.ownsCurrentItem(state) {
			return a, a.navigate(ScreenOfferForm)
		}
	case "e":
		if a.ownsCurrentItem(state) {
			a.editingItem = state.CurrentItem
			return a, a.navigate(ScreenItemForm)
		}
	}
	return a, nil
}

func (a *App) ownsCurrentItem(state store.State) bool {
	return state.User != nil && state.CurrentItem != nil &&
		state.CurrentItem.Owner == state.User.Username
}

func (a *App) updateMyItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "c":
		a.store.ClearError()
		return a, nil
	case "n":
		a.editingItem = nil
		return a, a.navigate(ScreenItemForm)
	case "e":
		if a.myItems != nil {
			if sel := a.myItems.Selected(); sel != nil {
				a.editingItem = sel
				return a, a.navigate(ScreenItemForm)
			}
		}
	case "d":
		if a.myItems != nil {
			if sel := a.myItems.Selected(); sel != nil {
				return a, a.deleteItem(sel.ID)
			}
		}
	case "s":
		if a.myItems != nil {
			if sel := a.myItems.Selected(); sel != nil {
				return a, a.toggleItemStatus(sel)
			}
		}
	}

	if a.myItems == nil {
		return a, nil
	}
	model, cmd := a.myItems.Update(msg)
	a.myItems = model.(*catalog.Catalog)
	return a, cmd
}

func (a *App) updateOffers(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "c":
		a.store.ClearError()
		return a, nil
	}

	if a.offerList == nil {
		return a, nil
	}
	model, cmd := a.offerList.Update(msg)
	a.offerList = model.(*offers.Offers)
	return a, cmd
}

func (a *App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b", "esc":
		return a, a.navigate(ScreenCatalog)
	case "x":
		return a, a.logout()
	}
	return a, nil
}

// activeForm returns the form model for the current screen, if any
func (a *App) activeForm() tea.Model {
	switch a.screen {
	case ScreenLogin:
		if a.loginForm != nil {
			return a.loginForm
		}
	case ScreenRegister:
		if a.registerFrm != nil {
			return a.registerFrm
		}
	case ScreenItemForm:
		if a.itemForm != nil {
			return a.itemForm
		}
	case ScreenOfferForm:
		if a.offerForm != nil {
			return a.offerForm
		}
	}
	return nil
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := a.activeForm()
	if form == nil {
		return a, nil
	}

	model, cmd := form.Update(msg)
	switch m := model.(type) {
	case *forms.Login:
		a.loginForm = m
	case *forms.Register:
		a.registerFrm = m
	case *forms.ItemForm:
		a.itemForm = m
	case *forms.OfferForm:
		a.offerForm = m
	}
	return a, cmd
}

// Store action commands. Each runs the blocking store method off the
// UI goroutine; the store's dispatches drive re-renders via Subscribe.

func (a *App) login(username, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.store.Login(context.Background(), username, password)
		return sessionChangedMsg{err: err}
	}
}

func (a *App) register(input client.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		// Without a token the guard bounces the follow-up navigation
		// to login, which is where a fresh account belongs anyway
		_, err := a.store.Register(context.Background(), input)
		return sessionChangedMsg{err: err}
	}
}

func (a *App) logout() tea.Cmd {
	return func() tea.Msg {
		a.store.Logout()
		return sessionChangedMsg{}
	}
}

func (a *App) refreshItems() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: a.store.LoadItems(context.Background())}
	}
}

func (a *App) searchItems(query, category string) tea.Cmd {
	return func() tea.Msg {
		err := a.store.SearchItems(context.Background(), query, client.SearchFilters{Category: category})
		return actionDoneMsg{err: err}
	}
}

func (a *App) loadItem(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := a.store.LoadItem(context.Background(), id)
		return actionDoneMsg{err: err}
	}
}

func (a *App) saveItem(id int, input client.ItemInput) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == 0 {
			_, err = a.store.CreateItem(context.Background(), input)
		} else {
			_, err = a.store.UpdateItem(context.Background(), id, input)
		}
		return itemSavedMsg{err: err}
	}
}

func (a *App) deleteItem(id int) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: a.store.DeleteItem(context.Background(), id)}
	}
}

func (a *App) toggleItemStatus(item *client.Item) tea.Cmd {
	status := client.ItemUnavailable
	if item.Status == client.ItemUnavailable {
		status = client.ItemAvailable
	}
	id := item.ID
	return func() tea.Msg {
		_, err := a.store.ChangeItemStatus(context.Background(), id, status)
		return actionDoneMsg{err: err}
	}
}

func (a *App) loadOffers() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: a.store.LoadOffers(context.Background())}
	}
}

func (a *App) createOffer(input client.OfferInput) tea.Cmd {
	return func() tea.Msg {
		_, err := a.store.CreateOffer(context.Background(), input)
		return offerCreatedMsg{err: err}
	}
}

func (a *App) acceptOffer(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := a.store.AcceptOffer(context.Background(), id)
		return actionDoneMsg{err: err}
	}
}

func (a *App) refuseOffer(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := a.store.RefuseOffer(context.Background(), id)
		return actionDoneMsg{err: err}
	}
}

func (a *App) withdrawOffer(id int) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: a.store.DeleteOffer(context.Background(), id)}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenCatalog:
		content = a.viewCatalog()
	case ScreenItemDetail:
		content = a.viewItemDetail()
	case ScreenLogin, ScreenRegister, ScreenItemForm, ScreenOfferForm:
		content = a.viewForm()
	case ScreenMyItems:
		content = a.viewMyItems()
	case ScreenOffers:
		content = a.viewOffers()
	case ScreenProfile:
		content = a.viewProfile()
	default:
		content = a.viewCatalog()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewCatalog() string {
	if a.catalogList != nil {
		return a.catalogList.View()
	}
	return ""
}

func (a *App) viewMyItems() string {
	if a.myItems != nil {
		return a.myItems.View()
	}
	return ""
}

func (a *App) viewOffers() string {
	if a.offerList != nil {
		return a.offerList.View()
	}
	return ""
}

func (a *App) viewForm() string {
	if form := a.activeForm(); form != nil {
		return form.View()
	}
	return ""
}

func (a *App) viewItemDetail() string {
	state := a.store.State()

	if state.Loading && state.CurrentItem == nil {
		return styles.Subtitle.Render("Loading item...")
	}
	item := state.CurrentItem
	if item == nil {
		return styles.Subtitle.Render("Item not found.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(widgets.ItemStatusBadge(item.Status))
	b.WriteString("  " + widgets.CategoryLabel(item.Category))
	if item.Location != "" {
		b.WriteString("  " + icons.Location.String() + " " + item.Location)
	}
	b.WriteString("\n\n")
	b.WriteString(item.Description)
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render(icons.User.String() + " Listed by " + item.Owner))
	if item.ImageURL != "" {
		b.WriteString("\n" + styles.Subtitle.Render("Image: "+item.ImageURL))
	}

	return styles.ActivePanel.Render(b.String())
}

func (a *App) viewProfile() string {
	state := a.store.State()
	user := state.User
	if user == nil {
		return styles.Subtitle.Render("Not logged in.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(icons.User.String() + " " + user.Name))
	b.WriteString("\n")
	b.WriteString("Username: " + styles.ValueStyle.Render(user.Username) + "\n")
	b.WriteString("Email:    " + styles.ValueStyle.Render(user.Email) + "\n")
	if user.IsSuperuser || user.IsTradeAdmin {
		b.WriteString("\n" + widgets.Badge("ADMIN", widgets.StatusInfo))
	}

	own, traded := 0, 0
	for _, item := range state.Items {
		if item.Owner != user.Username {
			continue
		}
		own++
		if item.Status == client.ItemTraded {
			traded++
		}
	}
	b.WriteString(fmt.Sprintf("\n\nListings: %d (%d traded)", own, traded))

	return styles.ActivePanel.Render(b.String())
}

// renderHeader creates the header bar with app branding and session info
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	icon := icons.App.String()
	title := "TrocaMat"

	leftText := fmt.Sprintf(" %s %s", icon, titleStyle.Render(title))

	rightText := ""
	state := a.store.State()
	if state.User != nil {
		rightText = contextStyle.Render(icons.User.String()+" "+state.User.Username) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	header := "╭─" + leftRendered + fill + rightRendered + "─╮"

	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts per screen
func (a *App) renderFooter() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	state := a.store.State()

	var shortcuts []string
	switch a.screen {
	case ScreenCatalog:
		shortcuts = []string{"↑↓ Navigate", "Enter View", "/ Search", "f Filter"}
		if state.IsAuthenticated {
			shortcuts = append(shortcuts, "m My-items", "o Offers", "p Profile", "x Sign-out")
		} else {
			shortcuts = append(shortcuts, "i Sign-in", "u Sign-up")
		}
		shortcuts = append(shortcuts, "q Quit")
	case ScreenItemDetail:
		shortcuts = []string{"o Offer", "b Back", "q Quit"}
		if a.ownsCurrentItem(state) {
			shortcuts = []string{"e Edit", "b Back", "q Quit"}
		}
	case ScreenLogin, ScreenRegister, ScreenItemForm, ScreenOfferForm:
		shortcuts = []string{"Enter Confirm", "Esc Cancel"}
	case ScreenMyItems:
		shortcuts = []string{"n New", "e Edit", "d Delete", "s Status", "b Back", "q Quit"}
	case ScreenOffers:
		shortcuts = []string{"Tab Switch", "a Accept", "r Refuse", "d Withdraw", "b Back", "q Quit"}
	case ScreenProfile:
		shortcuts = []string{"x Sign-out", "b Back", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	leftWidth := lipgloss.Width(leftPlainText)
	fillWidth := width - 4 - leftWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	fill := strings.Repeat("─", fillWidth)

	footer := "╰─" + leftText + fill + "─╯"

	return borderStyle.Render(footer)
}

// renderNotices renders the error banner and transient notifications
func (a *App) renderNotices() string {
	state := a.store.State()
	var b strings.Builder

	if state.Err != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + state.Err + "  (c to dismiss)"))
		b.WriteString("\n")
	}

	for _, notice := range state.Notifications {
		var style lipgloss.Style
		var icon string
		switch notice.Type {
		case store.NoticeSuccess:
			style, icon = styles.NoticeSuccess, icons.CheckOK.String()
		case store.NoticeError:
			style, icon = styles.NoticeError, icons.Critical.String()
		default:
			style, icon = styles.NoticeInfo, icons.Info.String()
		}
		b.WriteString(style.Render(icon+" "+notice.Message) + "\n")
	}

	return b.String()
}

// wrapWithFrame wraps content with header, notices, and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	if notices := a.renderNotices(); notices != "" {
		sb.WriteString(notices)
	}
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(st *store.Store) error {
	app := New(st)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
