package testing

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-drift/reflex/pkg/headless"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// ErrBadStep is returned by Play for a step it cannot parse.
var ErrBadStep = errors.New("testing: bad step")

var inputClasses = []toolkit.Class{
	toolkit.ClassInput, toolkit.ClassIntInput, toolkit.ClassFloatInput,
	toolkit.ClassMultilineInput, toolkit.ClassSecretInput, toolkit.ClassFileInput,
}

var valuatorClasses = []toolkit.Class{
	toolkit.ClassDial, toolkit.ClassSlider, toolkit.ClassNiceSlider, toolkit.ClassValueSlider,
	toolkit.ClassLineDial, toolkit.ClassCounter, toolkit.ClassScrollbar, toolkit.ClassRoller,
	toolkit.ClassAdjuster, toolkit.ClassValueInput, toolkit.ClassValueOutput,
	toolkit.ClassFillSlider, toolkit.ClassFillDial, toolkit.ClassHorSlider,
	toolkit.ClassHorFillSlider, toolkit.ClassHorNiceSlider, toolkit.ClassHorValueSlider,
}

// AnyInput finds text inputs of every input class.
func AnyInput() Finder {
	return ByPredicate("AnyInput()", func(n *headless.Node) bool {
		return slices.Contains(inputClasses, n.Class)
	})
}

// AnyValuator finds valuators of every valuator class.
func AnyValuator() Finder {
	return ByPredicate("AnyValuator()", func(n *headless.Node) bool {
		return slices.Contains(valuatorClasses, n.Class)
	})
}

// Play runs scripted steps in order. Each step is "action" or
// "action:argument":
//
//	tap:<label>     activate the first handle labelled label
//	check:<n>       activate the nth check button
//	type:<text>     replace the text of the first input
//	enter           press enter in the first input
//	pick:<item>     choose item in the first menu, tree or browser holding it
//	slide:<value>   move the first valuator to value
//	resize:<w>x<h>  resize the window
//	close           close the window
func (a *AppTester) Play(steps ...string) error {
	for i, step := range steps {
		if err := a.play(step); err != nil {
			return fmt.Errorf("step %d %q: %w", i+1, step, err)
		}
	}
	return nil
}

func (a *AppTester) play(step string) error {
	action, arg, _ := strings.Cut(step, ":")
	switch action {
	case "tap":
		return a.Tap(ByLabel(arg))
	case "check":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadStep, err)
		}
		return a.TapNth(ByClass(toolkit.ClassCheckButton), n)
	case "type":
		return a.Type(AnyInput(), arg)
	case "enter":
		return a.Enter(AnyInput())
	case "pick":
		return a.Pick(ByItem(arg), arg)
	case "slide":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadStep, err)
		}
		return a.Slide(AnyValuator(), v)
	case "resize":
		ws, hs, ok := strings.Cut(arg, "x")
		w, werr := strconv.Atoi(ws)
		h, herr := strconv.Atoi(hs)
		if !ok || werr != nil || herr != nil {
			return fmt.Errorf("%w: size %q", ErrBadStep, arg)
		}
		return a.Resize(w, h)
	case "close":
		a.Close()
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", ErrBadStep, action)
}
