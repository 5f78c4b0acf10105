// Package testing drives the inspect package from Go tests.
//
// A [WidgetTester] holds the widget under test together with the ambient
// instances its custom views need, and re-inspects it on every Pump:
//
//	func TestProfile(t *testing.T) {
//	    tester := drifttest.NewWidgetTesterWithT(t)
//	    tester.Provide(&Session{User: "ada"})
//	    tester.PumpWidget(Profile{})
//
//	    greeting := tester.Find(drifttest.ByText("ada"))
//	    if err := greeting.Err(); err != nil {
//	        t.Fatal(err)
//	    }
//	    t.Log(greeting.First().PathToRoot())
//	}
//
// A [Finder] that matches nothing still says why: [FinderResult.Err]
// returns the search error, which names every node the search could not
// expand, for example a custom view whose ambient dependency was never
// provided.
//
// # Gestures
//
// [WidgetTester.Tap] and [WidgetTester.LongPress] call the callbacks of
// the first match. Call Pump afterwards to see the rebuilt tree.
//
// # Snapshots
//
// [WidgetTester.CaptureSnapshot] records the attribute tree of the root,
// custom view bodies and modifiers included, as JSON. MatchSnapshot
// compares it with a golden file under the configured snapshot directory
// (testdata unless inspect.yaml says otherwise). Golden files are
// rewritten instead of compared when DRIFT_UPDATE_SNAPSHOTS=1:
//
//	DRIFT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Lifecycle hooks
//
// [Inspection] hands widgets from app callbacks to the test, so a screen
// can be inspected at the moment it appears rather than after the fact.
//
// Import the package under an alias, since its name collides with the
// standard library's:
//
//	import drifttest "github.com/go-drift/inspect/pkg/testing"
package testing
