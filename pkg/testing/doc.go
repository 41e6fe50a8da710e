// Package testing drives reflex applications against the headless toolkit.
//
// # Quick Start
//
// Create a tester for an application, act on widgets through finders and
// assert on the resulting native tree:
//
//	func TestCounter(t *testing.T) {
//	    tester := reflextest.NewAppTesterWithT(t, counter.New())
//
//	    if err := tester.Tap(reflextest.ByLabel("+")); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if !tester.Find(reflextest.ByLabel("1")).Exists() {
//	        t.Error("expected label '1'")
//	    }
//	}
//
// Every action enqueues a simulated native event and then pumps: each queued
// payload runs one update cycle before the action returns.
//
// # Snapshot Testing
//
// Compare the native tree against a golden file:
//
//	tester.Snapshot().MatchesFile(t, "testdata/counter.snapshot")
//
// Update snapshots with:
//
//	REFLEX_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import reflextest "github.com/go-drift/reflex/pkg/testing"
package testing
