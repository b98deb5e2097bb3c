// Package enums describes integer enumerations as first-class values: a
// Type[T] pairs a named set of constants with the metadata preference
// containers need to validate, render and parse them.
//
// Go constants carry no runtime type information, so a Type is declared
// explicitly, usually at package level with the fail-fast constructor:
//
//	type Color uint8
//
//	const (
//	    Red Color = iota + 1
//	    Green
//	    Blue
//	)
//
//	var Colors = enums.MustNew("Color",
//	    enums.Def(Red, "Red"),
//	    enums.Def(Green, "Green"),
//	    enums.Def(Blue, "Blue"),
//	)
//
// # Flags
//
// NewFlags declares a type whose values combine bitwise. ValidFlags implements
// the defined-and-nonzero rule: a value is a valid combination when it is not
// zero and every set bit is covered by a defined member. Format decomposes
// combinations into separator-joined names and Parse reassembles them:
//
//	var Perms = enums.MustNewFlags("Perm",
//	    enums.Def(Read, "Read"),
//	    enums.Def(Write, "Write"),
//	)
//
//	Perms.Format(Read | Write)  // "Read|Write"
//	Perms.Parse("Read|Write")   // Read | Write
//
// # Textual form
//
// Format falls back to the decimal form for values it cannot name, and Parse
// accepts everything Format produces, including bare numbers. Parse does not
// check decimal input for definedness; restricting values to defined members
// is an allowed-value policy concern, not a parsing concern.
//
// # Error Handling
//
// Declaration errors surface sentinel errors (ErrDuplicateMemberName and
// friends) detectable with errors.Is. Parse reports unknown names with
// UnknownNameError, detectable with IsUnknownNameError.
//
// # Concurrency
//
// A Type is immutable after construction and safe for concurrent use without
// locking.
package enums
