package vehicle

// Compile-time interface satisfaction checks.
// If a built-in kind stops providing the capability set, the compiler
// reports it here rather than at a distant use site.
var (
	_ Vehicle = Airplane{}
	_ Vehicle = Motorcycle{}
)
