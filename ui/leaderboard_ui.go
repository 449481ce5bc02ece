package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Row is one line of the score table.
type Row struct {
	Rank      int
	Name      string
	Score     int
	Highlight bool // the local player's row
}

type LeaderboardUI struct {
	UI *ebitenui.UI

	OnRefresh func()
	OnGoBack  func()

	table       *widget.Container
	statusLabel *widget.Label
	bestLabel   *widget.Label
	refreshBtn  *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLeaderboardUI(onRefresh func(), onGoBack func()) *LeaderboardUI {
	ui := &LeaderboardUI{
		OnRefresh: onRefresh,
		OnGoBack:  onGoBack,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *LeaderboardUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *LeaderboardUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LEADERBOARD", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 140, 0, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	ui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.bestLabel)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	ui.table = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Padding(&padding),
			widget.GridLayoutOpts.Spacing(24, 4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 40)),
	)
	contentContainer.AddChild(ui.table)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	buttonsContainer := ui.buildButtons()
	contentContainer.AddChild(buttonsContainer)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LeaderboardUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.refreshBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Refresh", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnRefresh != nil {
				ui.OnRefresh()
			}
		}),
	)
	container.AddChild(ui.refreshBtn)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

func (ui *LeaderboardUI) cell(s string, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &ui.normalFace, &widget.LabelColor{Idle: clr}),
	)
}

// SetRows replaces the table contents.
func (ui *LeaderboardUI) SetRows(rows []Row) {
	ui.table.RemoveChildren()

	header := color.RGBA{160, 160, 180, 255}
	for _, title := range []string{"#", "Name", "Score"} {
		ui.table.AddChild(ui.cell(title, header))
	}

	for _, r := range rows {
		clr := color.Color(color.RGBA{255, 255, 255, 255})
		if r.Highlight {
			clr = color.RGBA{255, 180, 50, 255}
		}
		ui.table.AddChild(ui.cell(fmt.Sprintf("%d", r.Rank), clr))
		ui.table.AddChild(ui.cell(r.Name, clr))
		ui.table.AddChild(ui.cell(fmt.Sprintf("%d", r.Score), clr))
	}
}

func (ui *LeaderboardUI) SetBestScore(best int) {
	if ui.bestLabel != nil {
		ui.bestLabel.Label = fmt.Sprintf("Your best: %d", best)
	}
}

func (ui *LeaderboardUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LeaderboardUI) SetRefreshing(refreshing bool) {
	if ui.refreshBtn != nil {
		ui.refreshBtn.GetWidget().Disabled = refreshing
	}
}

func (ui *LeaderboardUI) Update() {
	ui.UI.Update()
}
