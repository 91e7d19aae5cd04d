/*
File    : monkey/object/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// BuiltinFunction is the native Go implementation backing a Builtin
// value. It receives the io.Writer of the Environment the call was made
// from (so `puts` can print to the right place without any shared
// mutable state) plus its already-evaluated arguments, and returns the
// result or an *Error value on misuse. Built-ins report failure as a
// value, the same as every other part of the evaluator, never as a Go
// panic or error return. This writer-threading shape is grounded on the
// reference interpreter's own CallbackFunc(writer io.Writer, args
// ...GoMixObject) GoMixObject.
type BuiltinFunction func(out io.Writer, args ...Object) Object

// Builtin wraps a BuiltinFunction as an Object so it can be bound in an
// Environment and flow through CallExpression evaluation exactly like a
// user-defined Function.
type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function" }

// Builtins is the fixed name -> native-function table consulted by the
// evaluator whenever an Identifier lookup misses every Environment in
// the scope chain. It is process-wide and immutable once package object
// has finished initializing.
var Builtins = map[string]*Builtin{
	"len":   {Fn: builtinLen},
	"puts":  {Fn: builtinPuts},
	"first": {Fn: builtinFirst},
	"last":  {Fn: builtinLast},
	"rest":  {Fn: builtinRest},
	"push":  {Fn: builtinPush},
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// builtinLen reports the length of its single argument: for a String,
// the number of Unicode code points (matching the Python original's
// `len(str)`, not a raw byte count); for an Array, its element count.
func builtinLen(out io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(utf8.RuneCountInString(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

// builtinPuts prints the Inspect() of each argument on its own line to
// out and always returns NULL. A nil out discards the output.
func builtinPuts(out io.Writer, args ...Object) Object {
	if out == nil {
		return NULL
	}
	for _, arg := range args {
		fmt.Fprintln(out, arg.Inspect())
	}
	return NULL
}

// builtinFirst returns the first element of an Array argument, or NULL
// for an empty array.
func builtinFirst(out io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NULL
}

// builtinLast returns the last element of an Array argument, or NULL for
// an empty array.
func builtinLast(out io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		return arr.Elements[length-1]
	}
	return NULL
}

// builtinRest returns a new Array holding every element of its Array
// argument after the first, without mutating the input. An empty array
// yields NULL.
func builtinRest(out io.Writer, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length > 0 {
		newElements := make([]Object, length-1)
		copy(newElements, arr.Elements[1:length])
		return &Array{Elements: newElements}
	}
	return NULL
}

// builtinPush returns a new Array equal to its first (Array) argument
// with the second argument appended, without mutating the input.
func builtinPush(out io.Writer, args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}

	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]

	return &Array{Elements: newElements}
}
