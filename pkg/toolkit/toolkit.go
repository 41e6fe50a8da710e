// Package toolkit defines the capability surface the reconciliation core
// requires from the native widget toolkit.
//
// The interface is deliberately small: create and destroy handles, move
// them, set and query a fixed set of attributes, attach one callback per
// handle, manage container children and item lists, and post payloads to
// the UI thread's wait primitive. Everything except Awake must be called
// from the UI thread.
package toolkit

import "errors"

// Handle identifies a live native widget. The zero Handle is "no widget".
type Handle int64

// Class names the native widget class to instantiate.
type Class string

// Native classes known to the core.
const (
	ClassWindow Class = "Window"
	ClassBox    Class = "Box"

	ClassButton           Class = "Button"
	ClassRadioButton      Class = "RadioButton"
	ClassToggleButton     Class = "ToggleButton"
	ClassRoundButton      Class = "RoundButton"
	ClassCheckButton      Class = "CheckButton"
	ClassLightButton      Class = "LightButton"
	ClassRepeatButton     Class = "RepeatButton"
	ClassRadioLightButton Class = "RadioLightButton"
	ClassRadioRoundButton Class = "RadioRoundButton"

	ClassInput          Class = "Input"
	ClassIntInput       Class = "IntInput"
	ClassFloatInput     Class = "FloatInput"
	ClassMultilineInput Class = "MultilineInput"
	ClassSecretInput    Class = "SecretInput"
	ClassFileInput      Class = "FileInput"

	ClassOutput          Class = "Output"
	ClassMultilineOutput Class = "MultilineOutput"

	ClassDial           Class = "Dial"
	ClassSlider         Class = "Slider"
	ClassNiceSlider     Class = "NiceSlider"
	ClassValueSlider    Class = "ValueSlider"
	ClassLineDial       Class = "LineDial"
	ClassCounter        Class = "Counter"
	ClassScrollbar      Class = "Scrollbar"
	ClassRoller         Class = "Roller"
	ClassAdjuster       Class = "Adjuster"
	ClassValueInput     Class = "ValueInput"
	ClassValueOutput    Class = "ValueOutput"
	ClassFillSlider     Class = "FillSlider"
	ClassFillDial       Class = "FillDial"
	ClassHorSlider      Class = "HorSlider"
	ClassHorFillSlider  Class = "HorFillSlider"
	ClassHorNiceSlider  Class = "HorNiceSlider"
	ClassHorValueSlider Class = "HorValueSlider"

	ClassMenuBar    Class = "MenuBar"
	ClassSysMenuBar Class = "SysMenuBar"
	ClassChoice     Class = "Choice"

	ClassTree Class = "Tree"

	ClassBrowser       Class = "Browser"
	ClassHoldBrowser   Class = "HoldBrowser"
	ClassSelectBrowser Class = "SelectBrowser"
	ClassMultiBrowser  Class = "MultiBrowser"
	ClassFileBrowser   Class = "FileBrowser"

	ClassGroup  Class = "Group"
	ClassFlex   Class = "Flex"
	ClassPack   Class = "Pack"
	ClassScroll Class = "Scroll"
	ClassTabs   Class = "Tabs"
	ClassTile   Class = "Tile"
)

// ErrUnknownClass is returned by Create for a class the toolkit cannot build.
var ErrUnknownClass = errors.New("toolkit: unknown widget class")

// Rect is a widget's geometry in window coordinates.
type Rect struct {
	X, Y, W, H int
}

// Margins are the inner margins of a flex container.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Selection selects or deselects one browser line.
type Selection struct {
	Line int
	On   bool
}

// SizeRange bounds a window's size.
type SizeRange struct {
	MinW, MinH, MaxW, MaxH int
}

// Reason explains why a callback fired.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonActivated
	ReasonChanged
	ReasonEnterKey
	ReasonReleased
	ReasonSelected
	ReasonClosed
)

func (r Reason) String() string {
	switch r {
	case ReasonActivated:
		return "activated"
	case ReasonChanged:
		return "changed"
	case ReasonEnterKey:
		return "enter"
	case ReasonReleased:
		return "released"
	case ReasonSelected:
		return "selected"
	case ReasonClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Event is delivered to a handle's callback.
type Event struct {
	Handle Handle
	Reason Reason
	// Item is the item index for menu, tree and browser events, -1 otherwise.
	Item int
}

// Callback is the single native callback attached to a handle.
type Callback func(Event)

// Item is one entry appended to a menu, tree or browser.
type Item struct {
	Label     string
	Shortcut  int
	Flags     int
	LabelSize int
	// Callback fires when the item is picked. Nil items are inert.
	Callback func()
}

// Environment is the process-wide toolkit configuration applied once at
// startup. Nil pointers leave the toolkit default untouched.
type Environment struct {
	Scheme       string
	Background   *uint32
	Background2  *uint32
	Foreground   *uint32
	Inactive     *uint32
	Selection    *uint32
	FontSize     int
	Font         *int
	VisibleFocus *bool
}

// Toolkit is the native widget toolkit as seen by the core.
type Toolkit interface {
	// Setup applies the process-wide environment. Called once before any
	// handle is created.
	Setup(env Environment) error

	// Create allocates a native handle of the given class.
	Create(class Class, r Rect, label string) (Handle, error)
	// Destroy releases h. h must already be detached from its parent and
	// have no children; callers destroy descendants first.
	Destroy(h Handle)

	Geometry(h Handle) Rect
	SetGeometry(h Handle, r Rect)

	// SetAttr sets one attribute. A nil value restores the class default.
	SetAttr(h Handle, attr Attr, value any)
	// Attr reads one attribute back from the live widget.
	Attr(h Handle, attr Attr) (any, bool)

	// SetCallback replaces the handle's callback. Nil detaches it.
	SetCallback(h Handle, cb Callback)
	// SetResizeHandler registers fn to run after h is resized. Nil detaches it.
	SetResizeHandler(h Handle, fn func(Rect))

	Add(parent, child Handle)
	Insert(parent, child Handle, index int)
	// Remove detaches the child at index without destroying it.
	Remove(parent Handle, index int)
	// Clear detaches every child without destroying them.
	Clear(parent Handle)
	Children(parent Handle) int
	Child(parent Handle, index int) Handle
	// SetResizable marks child as the space-filling child of parent.
	SetResizable(parent, child Handle)
	// SetFixed pins child's size along a flex parent's main axis.
	SetFixed(parent, child Handle, size int)
	// End seals a container: no further children are adopted implicitly.
	End(parent Handle)

	AddItem(h Handle, item Item) int
	ClearItems(h Handle)

	Show(h Handle)
	Redraw(h Handle)

	// Awake posts payload to the UI thread's wait primitive and wakes it.
	// Safe to call from any goroutine.
	Awake(payload any)
	// Wait blocks until a posted payload is available, dispatching native
	// events to their callbacks in the meantime. ok is false once the last
	// window has closed.
	Wait() (payload any, ok bool)
}
