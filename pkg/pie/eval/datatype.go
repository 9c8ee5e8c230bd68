// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package eval

import (
	"fmt"

	"github.com/consensys/go-pie/pkg/pie/core"
	"github.com/consensys/go-pie/pkg/pie/env"
	"github.com/consensys/go-pie/pkg/pie/value"
)

// The types of the binders of a datatype are core terms which may refer to
// global names, as well as to earlier binders of the datatype itself.  They
// are therefore evaluated in an environment which binds all global names, and
// which is then extended (left-to-right) with the binders as they are
// instantiated.  The closures below capture the extended environment, such
// that later binders see the values chosen for earlier ones.

// DatatypeType constructs the type of a datatype's name when used as a
// function, i.e. a Π over its parameters and indices ending in U.
func DatatypeType(e env.Environment, def *core.Datatype) value.Value {
	binders := append(append([]core.Binder{}, def.Parameters...), def.Indices...)
	//
	return telescope(e, binders, nil, func(env.Environment, []value.Value) value.Value {
		return &value.Universe{}
	})
}

// ConstructorType constructs the type of a constructor when used as a
// function.  This is a Π over the parameters of the datatype, followed by the
// arguments of the constructor, ending with the family instance which it
// constructs.
func ConstructorType(e env.Environment, def *core.Datatype, index int) value.Value {
	ctor := &def.Constructors[index]
	n := len(def.Parameters)
	binders := append(append([]core.Binder{}, def.Parameters...), ctor.Arguments...)
	//
	return telescope(e, binders, nil, func(e env.Environment, args []value.Value) value.Value {
		return &value.InductiveType{Def: def, Parameters: args[:n], Indices: valOfAll(e, ctor.Indices)}
	})
}

// ConstructorArgumentsType constructs a Π over the arguments of a given
// constructor, for a given instantiation of parameters, ending with the family
// instance which it constructs.
func ConstructorArgumentsType(e env.Environment, def *core.Datatype, params []value.Value, index int) value.Value {
	ctor := &def.Constructors[index]
	e = bindAll(e, def.Parameters, params)
	//
	return telescope(e, ctor.Arguments, nil, func(e env.Environment, _ []value.Value) value.Value {
		return &value.InductiveType{Def: def, Parameters: params, Indices: valOfAll(e, ctor.Indices)}
	})
}

// ConstructorArgumentTypes determines the types of the arguments of a given
// constructor application, for a given instantiation of parameters.
func ConstructorArgumentTypes(e env.Environment, def *core.Datatype, params []value.Value,
	index int, args []value.Value) []value.Value {
	ctor := &def.Constructors[index]
	types := make([]value.Value, len(ctor.Arguments))
	e = bindAll(e, def.Parameters, params)
	//
	for i, b := range ctor.Arguments {
		types[i] = ValOf(e, b.Type)
		e = e.Extend(b.Name, args[i])
	}
	//
	return types
}

// ConstructorIndices determines the indices of the family instance constructed
// by a given constructor application, for a given instantiation of
// parameters.
func ConstructorIndices(e env.Environment, def *core.Datatype, params []value.Value, index int,
	args []value.Value) []value.Value {
	ctor := &def.Constructors[index]
	e = bindAll(bindAll(e, def.Parameters, params), ctor.Arguments, args)
	//
	return valOfAll(e, ctor.Indices)
}

// MotiveType constructs the type of the motive for eliminating a datatype at
// a given instantiation of its parameters.  This is a Π over the indices of
// the datatype, followed by the target, ending in U.  For example, the motive
// of a datatype Bool without parameters or indices has type (→ Bool U).
func MotiveType(e env.Environment, def *core.Datatype, params []value.Value) value.Value {
	e = bindAll(e, def.Parameters, params)
	//
	return telescope(e, def.Indices, nil, func(_ env.Environment, indices []value.Value) value.Value {
		target := &value.InductiveType{Def: def, Parameters: params, Indices: indices}
		return arrow("target", target, &value.Universe{})
	})
}

// MethodType constructs the type of the method for a given constructor when
// eliminating a datatype at a given instantiation of its parameters, with a
// given motive.  Each argument of the constructor is bound in turn and, after
// any argument which is itself an instance of the datatype, an induction
// hypothesis is bound whose type is the motive applied to that argument.  The
// method type concludes with the motive applied to the constructor itself.
func MethodType(e env.Environment, def *core.Datatype, params []value.Value, motive value.Value,
	index int) value.Value {
	e = bindAll(e, def.Parameters, params)
	//
	return methodTelescope(e, def, index, motive, 0, nil)
}

func methodTelescope(e env.Environment, def *core.Datatype, index int, motive value.Value, i int,
	args []value.Value) value.Value {
	ctor := &def.Constructors[index]
	//
	if i == len(ctor.Arguments) {
		target := &value.Constructor{Def: def, Index: index, Arguments: args}
		return ApplyMotive(motive, valOfAll(e, ctor.Indices), target)
	}
	//
	binder := ctor.Arguments[i]
	argType := ValOf(e, binder.Type)
	//
	return &value.Pi{ArgName: binder.Name, ArgType: argType, Result: value.HigherOrderClosure{
		Fn: func(arg value.Value) value.Value {
			next := e.Extend(binder.Name, arg)
			nargs := append(args[:len(args):len(args)], arg)
			//
			if !ctor.IsRecursive(def, i) {
				return methodTelescope(next, def, index, motive, i+1, nargs)
			}
			// Induction hypothesis
			instance := value.Now(argType).(*value.InductiveType)
			ih := ApplyMotive(motive, instance.Indices, arg)
			//
			return &value.Pi{ArgName: "ih-" + binder.Name, ArgType: ih, Result: value.HigherOrderClosure{
				Fn: func(value.Value) value.Value {
					return methodTelescope(next, def, index, motive, i+1, nargs)
				}}}
		}}}
}

// DoEliminator eliminates a value of a user-declared family.  When the target
// is a constructor, the corresponding method is applied to its arguments,
// with each recursive argument followed by its (delayed) induction hypothesis.
func DoEliminator(e env.Environment, def *core.Datatype, target value.Value, motive value.Value,
	methods []value.Value) value.Value {
	switch t := value.Now(target).(type) {
	case *value.Constructor:
		var (
			ctor   = &def.Constructors[t.Index]
			result = methods[t.Index]
		)
		//
		for i, arg := range t.Arguments {
			result = DoApp(result, arg)
			//
			if ctor.IsRecursive(def, i) {
				sub := arg
				result = DoApp(result, value.NewDelay(func() value.Value {
					return DoEliminator(e, def, sub, motive, methods)
				}))
			}
		}
		//
		return result
	case *value.Neutral:
		instance, ok := value.Now(t.Type).(*value.InductiveType)
		if !ok {
			panic(fmt.Sprintf("%s on %T", def.EliminatorName(), t.Type))
		}
		//
		typedMethods := make([]value.TypedValue, len(methods))
		//
		for i, m := range methods {
			typedMethods[i] = value.TypedValue{Type: MethodType(e, def, instance.Parameters, motive, i), Value: m}
		}
		//
		return &value.Neutral{Type: ApplyMotive(motive, instance.Indices, t), Ne: &value.NeEliminator{
			Def:     def,
			Target:  t.Ne,
			Motive:  value.TypedValue{Type: MotiveType(e, def, instance.Parameters), Value: motive},
			Methods: typedMethods,
		}}
	default:
		panic(fmt.Sprintf("%s on %T", def.EliminatorName(), t))
	}
}

// telescope constructs a Π over a sequence of binders, where each binder's
// type may refer to those before it.
func telescope(e env.Environment, binders []core.Binder, args []value.Value,
	body func(env.Environment, []value.Value) value.Value) value.Value {
	if len(args) == len(binders) {
		return body(e, args)
	}
	//
	binder := binders[len(args)]
	//
	return &value.Pi{ArgName: binder.Name, ArgType: ValOf(e, binder.Type), Result: value.HigherOrderClosure{
		Fn: func(arg value.Value) value.Value {
			return telescope(e.Extend(binder.Name, arg), binders, append(args[:len(args):len(args)], arg), body)
		}}}
}

func bindAll(e env.Environment, binders []core.Binder, values []value.Value) env.Environment {
	for i, b := range binders {
		e = e.Extend(b.Name, values[i])
	}
	//
	return e
}

// ApplyMotive applies a motive to the indices of a target, followed by the
// target itself.
func ApplyMotive(motive value.Value, indices []value.Value, target value.Value) value.Value {
	for _, index := range indices {
		motive = DoApp(motive, index)
	}
	//
	return DoApp(motive, target)
}
