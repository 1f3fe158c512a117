// Package form turns an ordered set of fields into a reusable Definition and
// produces per-request Instances from it.
//
// A Definition is built once and is read-only afterwards, so it can be shared
// by every goroutine serving requests. Clone deep-copies its fields into a new
// Instance; the instance may then be bound to submitted data, validated and
// rendered without any of that state being observable through the definition
// or through sibling instances. Instances themselves are not safe for
// concurrent use.
//
// Typical request flow:
//
//	var signup = form.MustNew(
//		form.F("name", field.NewText()),
//		form.F("age", field.NewInteger(field.Optional())),
//	)
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		req, err := form.FromHTTP(r)
//		...
//		inst := form.CloneRequest(signup, req, "")
//		if inst.IsBound() && inst.Validate() {
//			save(inst.CleanedData())
//		}
//		io.WriteString(w, inst.Render("li"))
//	}
package form
