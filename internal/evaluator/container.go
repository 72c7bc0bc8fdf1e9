package evaluator

import "github.com/ibcompiler/ib/internal/bound"

// evalObjectMember evaluates the base to an Object, evaluates the
// method call's arguments against the transient scope the binder
// type-checked them under, and dispatches on the object's container
// kind and method name per the reflection method tables.
func (e *Evaluator) evalObjectMember(n *bound.ObjectMemberExpression) Value {
	base := e.eval(n.Base)
	if base.IsError() {
		return base
	}
	obj := base.Object

	args := make([]Value, len(n.Next.Args))
	for i, a := range n.Next.Args {
		v := e.eval(a)
		if v.IsError() {
			return v
		}
		args[i] = v
	}

	switch n.Next.Symbol.Name {
	case "push":
		obj.Items = append(obj.Items, args[0])
		return Void
	case "get":
		idx := args[0].Int
		if idx < 0 || idx >= int64(len(obj.Items)) {
			e.io.RuntimeError("array index out of bounds")
			return Error
		}
		return obj.Items[idx]
	case "len":
		return Int(int64(len(obj.Items)))
	case "hasNext":
		return Bool(obj.Head < len(obj.Items))
	case "getItem":
		if obj.Head >= len(obj.Items) {
			e.io.RuntimeError("cannot get item from an exhausted collection")
			return Error
		}
		v := obj.Items[obj.Head]
		obj.Head++
		return v
	case "resetNext":
		obj.Head = 0
		return Void
	case "addItem":
		obj.Items = append(obj.Items, args[0])
		return Void
	case "isEmpty":
		return Bool(len(obj.Items) == 0)
	case "pop":
		if len(obj.Items) == 0 {
			e.io.RuntimeError("Popping element from an empty stack")
			return Error
		}
		last := obj.Items[len(obj.Items)-1]
		obj.Items = obj.Items[:len(obj.Items)-1]
		return last
	case "enqueue":
		obj.Items = append([]Value{args[0]}, obj.Items...)
		return Void
	case "dequeue":
		if len(obj.Items) == 0 {
			e.io.RuntimeError("cannot dequeue from an empty queue")
			return Error
		}
		last := obj.Items[len(obj.Items)-1]
		obj.Items = obj.Items[:len(obj.Items)-1]
		return last
	default:
		return Void
	}
}
