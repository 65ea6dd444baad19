//go:build js && wasm

// Package jsmodule calls the exports of a render module loaded by the page,
// for example a wasm-bindgen module exposed as a global object.
package jsmodule

import (
	"fmt"
	"syscall/js"

	"canvashost/internal/module"
)

// Module is a JavaScript object whose function-valued properties are exports.
type Module struct {
	obj js.Value
}

var _ module.Module = Module{}

// Global returns the module stored in the global variable name.
func Global(name string) (Module, error) {
	v := js.Global().Get(name)
	if v.Type() != js.TypeObject && v.Type() != js.TypeFunction {
		return Module{}, fmt.Errorf("jsmodule: global %q is %s, not a module object", name, v.Type())
	}
	return Module{obj: v}, nil
}

// Call invokes obj[name]() and stringifies the result with String(). A
// JavaScript exception surfaces as a js.Error panic; the adapter recovers it.
func (m Module) Call(name string) (string, error) {
	if m.obj.Get(name).Type() != js.TypeFunction {
		return "", fmt.Errorf("%w: %q", module.ErrUnknownExport, name)
	}
	res := m.obj.Call(name)
	if res.IsUndefined() {
		return "", nil
	}
	return js.Global().Get("String").Invoke(res).String(), nil
}
