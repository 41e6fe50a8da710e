package showcase

import (
	"strconv"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/widgets"
)

var (
	materialBlue = style.RGB(0x42, 0xa5, 0xf5)
	selectedBlue = style.RGB(0x3f, 0x51, 0xb5)
	mutedGray    = style.RGB(0x75, 0x75, 0x75)
)

// Flutter mimics the default mobile counter app: an app bar, a centered
// count and a floating action button.
type Flutter struct {
	Count int
}

// NewFlutter returns the flutter-like counter.
func NewFlutter() engine.Application {
	return &Flutter{}
}

func flutterSettings() engine.Settings {
	s := engine.DefaultSettings()
	s.Width, s.Height = 600, 400
	s.Background = &style.RGBColor{R: 255, G: 255, B: 255}
	focus := false
	s.VisibleFocus = &focus
	return s
}

func (f *Flutter) Title() string { return "Counter" }

func (f *Flutter) Update(msg core.Message) {
	if msg == Increment {
		f.Count++
	}
}

func (f *Flutter) View() core.Widget {
	return widgets.ColumnOf(
		widgets.BoxOf("    Reflex App!").With(
			widgets.Align(style.AlignLeft|style.AlignInside),
			widgets.LabelColor(style.White),
			widgets.LabelSize(22),
			widgets.Frame(style.FlatBox),
			widgets.Color(materialBlue),
			widgets.Fixed(60),
		),
		widgets.BoxOf("You have pushed the button this many times:").With(
			widgets.Align(style.AlignBottom|style.AlignInside),
			widgets.LabelSize(18),
			widgets.LabelFont(style.Times),
		),
		widgets.BoxOf(strconv.Itoa(f.Count)).With(
			widgets.Align(style.AlignTop|style.AlignInside),
			widgets.LabelSize(36),
			widgets.LabelColor(mutedGray),
		),
		widgets.RowOf(
			widgets.BoxOf(""),
			widgets.ButtonOf("@+6plus", core.Emit(Increment)).With(
				widgets.LabelColor(style.White),
				widgets.Frame(style.OFlatBox),
				widgets.Color(materialBlue),
				widgets.SelectionColor(selectedBlue),
				widgets.Fixed(60),
			),
			widgets.BoxOf("").With(widgets.Fixed(20)),
		).With(widgets.Fixed(60)),
		widgets.BoxOf("").With(widgets.Fixed(20)),
	)
}
