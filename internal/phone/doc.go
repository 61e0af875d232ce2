package phone

// Package phone formats phone-number-shaped input for display while the user
// types. Format is pure; LiveEdit applies the typing policy on top of it.
