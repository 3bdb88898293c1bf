// Package visitor separates operations from the object structure they walk.
// Report elements form a stable type hierarchy; visitors add new operations
// over that hierarchy without the element types changing.
//
// Dispatch is double: the report hands each element to the visitor, and the
// element calls back the method for its own concrete type:
//
//	report := visitor.NewReport(
//	    &visitor.Text{Content: "Quarterly results"},
//	    &visitor.Table{Headers: []string{"Region", "Revenue"}},
//	)
//
//	wc := &visitor.WordCount{}
//	if err := report.Accept(wc); err != nil { ... }
//	fmt.Println(wc.Words)
//
// WordCount and PlainText are ready-made visitors; new operations implement
// the Visitor interface. The trade-off is the classic one: adding an
// operation is one new type here, but adding an element kind touches every
// visitor. Keep this package for structures whose element kinds are stable.
//
// A visitor that only cares about some element kinds can embed NopVisitor
// and override what it needs, a lightweight version of the acyclic-visitor
// variant that avoids forcing every method on every implementation.
package visitor
