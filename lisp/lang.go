package lisp

// DefaultModuleExt is the file extension of module files imported by name.
const DefaultModuleExt = ".eva"

// DefaultMaxDepth is the default limit on nested function calls.
const DefaultMaxDepth = 10000

// ConstructorSymbol names the method invoked by new.
const ConstructorSymbol = "constructor"

// ElseSymbol marks the default clause of a switch.
const ElseSymbol = "else"
