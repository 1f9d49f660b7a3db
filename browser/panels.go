package browser

import (
	"fmt"
	"runtime"

	"github.com/phanxgames/sapling"
)

// panelBounds is the dialog area: the screen inset by 20 pixels.
func (a *App) panelBounds() sapling.Rect {
	return a.Scene.Screen().Inset(20)
}

// showSettingsPanel lays out theme and font controls on a 2x3 form.
func (a *App) showSettingsPanel(s *sapling.Scene) {
	pb := a.panelBounds()
	form := sapling.NewForm(SettingsPanel, 2, 3, pb.W/2, pb.H/3).PositionAt(pb.X, pb.Y)
	s.AddViewToRoot(form)

	selected := 0
	if a.Theme.Name == "dark" {
		selected = 1
	}
	cells := []struct {
		view     *sapling.View
		col, row int
	}{
		{sapling.NewLabel("settings-theme-label", "Theme"), 0, 0},
		{sapling.NewToggleGroup(SettingsTheme, []string{"Light", "Dark"}, selected), 1, 0},
		{sapling.NewLabel("settings-font-label", "Font"), 0, 1},
		{sapling.NewButton(SettingsFont, fontTitle(a.fontName)), 1, 1},
		{sapling.NewButton(SettingsClose, "Close"), 1, 2},
	}
	for _, c := range cells {
		s.AddViewToParent(c.view, SettingsPanel)
		sapling.SetFormCell(s, SettingsPanel, c.view.Name, c.col, c.row)
	}
	s.SetFocused(SettingsClose)
}

func (a *App) showFontMenu(s *sapling.Scene) {
	if s.HasView(FontMenu) {
		s.SetFocused(FontMenu)
		return
	}
	menu := sapling.NewMenu(FontMenu, []string{"Small", "Medium", "Large"}).PositionAt(150, 70)
	s.AddViewToParent(menu, SettingsPanel)
	s.SetFocused(FontMenu)
}

// showInfoPanel lists runtime memory figures in a vertical box.
func (a *App) showInfoPanel(s *sapling.Scene) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	s.AddViewToRoot(sapling.NewVBox(InfoPanel, a.panelBounds(), 10, 4))
	rows := []struct{ name, text string }{
		{"info-label1", "Heap"},
		{"info-label2", fmt.Sprintf("In use   %s", kib(ms.HeapInuse))},
		{"info-label3", fmt.Sprintf("Idle     %s", kib(ms.HeapIdle))},
		{"info-label4", fmt.Sprintf("From OS  %s", kib(ms.Sys))},
		{"info-label5", fmt.Sprintf("Goroutines %d", runtime.NumGoroutine())},
	}
	for _, r := range rows {
		s.AddViewToParent(sapling.NewLabel(r.name, r.text), InfoPanel)
	}
	s.AddViewToParent(sapling.NewButton(InfoButton, "done"), InfoPanel)

	s.HideView(MainMenu)
	s.SetFocused(InfoButton)
}

func (a *App) showWifiPanel(s *sapling.Scene) {
	pb := a.panelBounds()
	s.AddViewToRoot(sapling.NewPanel(WifiPanel, pb))
	s.AddViewToParent(sapling.NewLabel("wifi-label1a", "SSID").PositionAt(pb.X+20, pb.Y+20), WifiPanel)
	s.AddViewToParent(sapling.NewLabel("wifi-label2a", "PASSWORD").PositionAt(pb.X+20, pb.Y+40), WifiPanel)
	s.AddViewToParent(sapling.NewButton(WifiButton, "done").PositionAt(pb.X+pb.W/2-20, pb.Y+100), WifiPanel)

	s.HideView(MainMenu)
	s.HideView(WifiMenu)
	s.SetFocused(WifiButton)
}

func (a *App) showURLPanel(s *sapling.Scene) {
	pb := a.panelBounds()
	s.AddViewToRoot(sapling.NewPanel(URLPanel, pb))
	s.AddViewToParent(sapling.NewLabel("url-label", "URL").PositionAt(pb.X+20, pb.Y+20), URLPanel)
	s.AddViewToParent(sapling.NewTextInput(URLInput, DefaultURLText, pb.W-40).PositionAt(pb.X+20, pb.Y+50), URLPanel)
	s.AddViewToParent(sapling.NewButton(URLCancel, "cancel").PositionAt(pb.X+40, pb.Bottom()-60), URLPanel)
	s.AddViewToParent(sapling.NewButton(URLLoad, "load").PositionAt(pb.X+140, pb.Bottom()-60), URLPanel)

	s.HideView(MainMenu)
	s.HideView(BrowserMenu)
	s.SetFocused(URLInput)
}

func fontTitle(name string) string {
	switch name {
	case "small":
		return "Small"
	case "large":
		return "Large"
	default:
		return "Medium"
	}
}

func kib(n uint64) string {
	return fmt.Sprintf("%d KiB", n/1024)
}
