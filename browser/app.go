// Package browser is the application built on the sapling core: a page view
// with a popup main menu, settings, info, network and URL panels. It wires
// page loads coming through an Inbox into scene mutations and interprets the
// actions the views bubble up.
package browser

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

// View names.
const (
	MainMenu      = "main"
	BrowserMenu   = "browser"
	WifiMenu      = "wifi-menu"
	PageView      = "page"
	StatusOverlay = "overlay-status"

	SettingsPanel  = "settings"
	SettingsTheme  = "settings-theme"
	SettingsFont   = "settings-font-button"
	SettingsClose  = "settings-close-button"
	FontMenu       = "font-menu"
	InfoPanel      = "info-panel"
	InfoButton     = "info-button"
	WifiPanel      = "wifi-panel"
	WifiButton     = "wifi-button"
	URLPanel       = "url-panel"
	URLInput       = "url-input"
	URLCancel      = "url-cancel-button"
	URLLoad        = "url-load-button"
	BookmarksURL   = "bookmarks.html"
	SDCardURL      = "sdcard.html"
	DefaultURLText = "https://apps.josh.earth"
)

// menuSlideSeconds is how long the main menu takes to slide in.
const menuSlideSeconds = 0.15

// Options configures an App.
type Options struct {
	Screen    sapling.Rect
	Theme     string // "light" or "dark"
	Font      string // "small", "medium" or "large"
	StartPage sapling.Page

	// Requests receives URLs the user asked to load. May be nil.
	Requests chan<- string
	// Inbox delivers pages and status lines. Created if nil.
	Inbox *Inbox

	Logger *zerolog.Logger
}

// App owns the browser scene and its theme.
type App struct {
	Scene *sapling.Scene
	Theme *sapling.Theme
	Inbox *Inbox

	fontName string
	requests chan<- string
	tweens   []*sapling.TweenGroup
	log      zerolog.Logger
}

// New builds the browser scene: a full-screen page view with focus, a
// hidden main menu, hidden browser and network submenus, and a status
// overlay.
func New(opts Options) *App {
	if opts.Screen.IsEmpty() {
		opts.Screen = sapling.NewRect(0, 0, 320, 240)
	}
	if opts.Inbox == nil {
		opts.Inbox = NewInbox(16)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.Font == "" {
		opts.Font = "medium"
	}

	a := &App{
		Inbox:    opts.Inbox,
		requests: opts.Requests,
		fontName: opts.Font,
		log:      log.With().Str("component", "browser").Logger(),
	}
	regular, bold := fontPair(opts.Font)
	a.Theme = sapling.ThemeByName(opts.Theme).WithFonts(regular, bold)

	s := sapling.NewScene(opts.Screen)
	s.SetLogger(log.With().Str("component", "scene").Logger())
	a.Scene = s

	start := opts.StartPage
	if len(start.Blocks) == 0 {
		start = welcomePage()
	}
	s.AddViewToRoot(sapling.NewPageView(PageView, opts.Screen, start))
	s.AddViewToRoot(sapling.NewMenu(MainMenu, []string{"Browser", "Network", "Settings", "Info", "close"}).Hide())
	s.AddViewToRoot(sapling.NewMenu(BrowserMenu, []string{"Bookmarks", "SDCard", "Open URL", "Back", "Forward", "close"}).
		PositionAt(20, 20).Hide())
	s.AddViewToRoot(sapling.NewMenu(WifiMenu, []string{"status", "scan", "close"}).PositionAt(20, 20).Hide())

	overlay := sapling.NewOverlayLabel(StatusOverlay, "")
	overlay.Bounds = sapling.NewRect(opts.Screen.Right()-140, opts.Screen.Bottom()-20, 140, 20)
	overlay.Visible = false
	s.AddViewToRoot(overlay)

	s.SetDefaultFocus(PageView)
	s.SetFocused(PageView)
	return a
}

// FontName returns the active font size label.
func (a *App) FontName() string {
	return a.fontName
}

// Update runs one frame of input: scripted input first, otherwise the
// host's polled events. It then drains the inbox and advances animations.
func (a *App) Update(dt float32, events ...sapling.InputEvent) {
	if !a.Scene.UpdateFunc(a.HandleEvent) {
		for _, ev := range events {
			a.HandleEvent(ev)
		}
	}
	a.Inbox.Drain(a.handleMessage)

	live := a.tweens[:0]
	for _, tw := range a.tweens {
		tw.Update(dt)
		if !tw.Done {
			live = append(live, tw)
		}
	}
	a.tweens = live
}

// Draw lays out and repaints the dirty part of the scene.
func (a *App) Draw(ctx sapling.DrawingContext) bool {
	return a.Scene.Render(ctx, a.Theme)
}

// HandleEvent applies the global key bindings, then routes ev through the
// scene. Space opens the main menu while the page has focus and the menu is
// hidden.
func (a *App) HandleEvent(ev sapling.InputEvent) {
	if k, ok := ev.(sapling.KeyEvent); ok && k.Key == sapling.KeySpace {
		if !a.Scene.IsVisible(MainMenu) && a.Scene.IsFocused(PageView) {
			a.openMainMenu()
			return
		}
	}
	a.Scene.HandleEvent(ev, a.HandleAction)
}

func (a *App) openMainMenu() {
	s := a.Scene
	menu := s.GetView(MainMenu)
	// Slide in from the left edge.
	s.MutateView(MainMenu, func(v *sapling.View) {
		v.Bounds.X = -menu.Bounds.W
		v.Bounds.Y = 0
	})
	s.RaiseView(MainMenu)
	s.ShowView(MainMenu)
	s.SetFocused(MainMenu)
	a.tweens = append(a.tweens, sapling.TweenPosition(s, MainMenu, 0, 0, menuSlideSeconds, ease.OutQuad))
}

// HandleAction is the single entry point for actions bubbled by views.
func (a *App) HandleAction(s *sapling.Scene, ta sapling.TargetedAction) {
	a.log.Debug().Str("view", ta.Target).Stringer("action", ta.Action).Msg("action")
	switch act := ta.Action.(type) {
	case sapling.Command:
		a.handleCommand(s, ta.Target, string(act))
	case sapling.Generic:
		a.handleGeneric(s, ta.Target)
	case sapling.LoadRequest:
		a.requestLoad(string(act))
	}
}

func (a *App) handleCommand(s *sapling.Scene, target, cmd string) {
	switch target {
	case MainMenu:
		switch cmd {
		case "Browser":
			s.RaiseView(BrowserMenu)
			s.ShowView(BrowserMenu)
			s.SetFocused(BrowserMenu)
		case "Network":
			s.RaiseView(WifiMenu)
			s.ShowView(WifiMenu)
			s.SetFocused(WifiMenu)
		case "Settings":
			s.HideView(MainMenu)
			a.showSettingsPanel(s)
		case "Info":
			a.showInfoPanel(s)
		case "close":
			s.HideView(MainMenu)
			s.SetFocused(PageView)
		default:
			a.log.Info().Str("item", cmd).Msg("unknown main menu item")
		}
	case BrowserMenu:
		switch cmd {
		case "Open URL":
			a.showURLPanel(s)
		case "Bookmarks":
			a.closeMenus(s)
			a.requestLoad(BookmarksURL)
		case "SDCard":
			a.closeMenus(s)
			a.requestLoad(SDCardURL)
		case "Back":
			a.closeMenus(s)
			sapling.PrevPage(s, PageView)
		case "Forward":
			a.closeMenus(s)
			sapling.NextPage(s, PageView)
		case "close":
			s.HideView(BrowserMenu)
			s.SetFocused(MainMenu)
		default:
			a.log.Info().Str("item", cmd).Msg("unknown browser menu item")
		}
	case WifiMenu:
		switch cmd {
		case "status":
			a.showWifiPanel(s)
		case "scan":
			a.setStatus("scanning...")
		case "close":
			s.HideView(WifiMenu)
			s.SetFocused(MainMenu)
		default:
			a.log.Info().Str("item", cmd).Msg("unknown wifi menu item")
		}
	case URLInput:
		a.submitURL(s, cmd)
	case SettingsTheme:
		a.setTheme(strings.ToLower(cmd))
	case FontMenu:
		a.setFont(strings.ToLower(cmd))
		sapling.SetTitle(s, SettingsFont, cmd)
		s.RemoveView(FontMenu)
		s.SetFocused(SettingsClose)
	}
}

func (a *App) handleGeneric(s *sapling.Scene, target string) {
	switch target {
	case InfoButton:
		s.RemoveParentAndChildren(InfoPanel)
		s.SetFocused(PageView)
	case SettingsClose:
		s.RemoveParentAndChildren(SettingsPanel)
		s.SetFocused(PageView)
	case URLCancel:
		s.RemoveParentAndChildren(URLPanel)
		s.SetFocused(PageView)
	case URLLoad:
		text := ""
		if v := s.GetView(URLInput); v != nil {
			text = v.Title
		}
		a.submitURL(s, text)
	case SettingsFont:
		a.showFontMenu(s)
	case WifiButton:
		s.RemoveParentAndChildren(WifiPanel)
		s.HideView(WifiMenu)
		s.HideView(MainMenu)
		s.SetFocused(PageView)
	}
}

func (a *App) closeMenus(s *sapling.Scene) {
	s.HideView(MainMenu)
	s.HideView(BrowserMenu)
	s.HideView(WifiMenu)
	s.SetFocused(PageView)
}

func (a *App) submitURL(s *sapling.Scene, text string) {
	s.RemoveParentAndChildren(URLPanel)
	a.closeMenus(s)
	if text = strings.TrimSpace(text); text != "" {
		a.requestLoad(text)
	}
}

// requestLoad hands rawURL to the network side without blocking the frame.
func (a *App) requestLoad(rawURL string) {
	if a.requests == nil {
		a.log.Warn().Str("url", rawURL).Msg("no loader attached")
		a.setStatus("offline")
		return
	}
	select {
	case a.requests <- rawURL:
		a.setStatus("loading...")
	default:
		a.log.Warn().Str("url", rawURL).Msg("request queue full")
		a.setStatus("busy")
	}
}

func (a *App) handleMessage(m Message) {
	switch m := m.(type) {
	case PageLoaded:
		sapling.LoadPage(a.Scene, PageView, m.Page)
		a.setStatus("")
	case Status:
		a.setStatus(m.Text)
	case LoadFailed:
		a.setStatus("load failed")
	}
}

// setStatus shows text in the overlay, or hides the overlay when empty.
func (a *App) setStatus(text string) {
	s := a.Scene
	sapling.SetTitle(s, StatusOverlay, text)
	if text == "" {
		s.HideView(StatusOverlay)
		return
	}
	s.RaiseView(StatusOverlay)
	s.ShowView(StatusOverlay)
}

func (a *App) setTheme(name string) {
	a.Theme = sapling.ThemeByName(name).WithFonts(a.Theme.Font, a.Theme.BoldFont)
	a.Scene.InvalidateTheme()
}

func (a *App) setFont(name string) {
	regular, bold := fontPair(name)
	a.fontName = name
	a.Theme = a.Theme.WithFonts(regular, bold)
	a.Scene.InvalidateTheme()
}

// fontPair returns the regular and bold fonts for a size label.
func fontPair(name string) (sapling.Font, sapling.Font) {
	switch name {
	case "small":
		return sapling.SmallFont, sapling.SmallFont
	case "large":
		return sapling.LargeFont, sapling.LargeFont
	default:
		return sapling.MediumFont, sapling.BoldFont
	}
}

func welcomePage() sapling.Page {
	blocks := []sapling.Block{sapling.NewBlock(sapling.BlockHeader, "Sapling")}
	for _, item := range []string{"space opens the menu", "j / k scroll", "a / s pick a link", "enter follows it"} {
		blocks = append(blocks, sapling.NewBlock(sapling.BlockListItem, item))
	}
	blocks = append(blocks,
		sapling.NewBlock(sapling.BlockParagraph, "This is some long body text that needs to be broken into multiple lines."),
		sapling.Block{Type: sapling.BlockParagraph, Spans: []sapling.Span{
			{Text: "Open the "},
			{Text: "bookmarks", Style: sapling.RunLink, Href: BookmarksURL},
			{Text: " page."},
		}},
	)
	return sapling.NewPage("", blocks...)
}
