// Package schema loads form definitions from declarative JSON or YAML files.
//
// A document maps form ids to ordered field lists:
//
//	forms:
//	  survey:
//	    title: Tell us about yourself
//	    fields:
//	      - name: firstName
//	        type: text
//	      - name: email
//	        type: email
//	        required: false
//	      - name: season
//	        type: dropdown
//	        choices: [[su, Summer], [w, Winter]]
//	      - name: submit
//	        type: button
//
// Field types are the field.Kind names. Labels default the same way they do
// for definitions built in code.
package schema
