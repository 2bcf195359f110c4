package lisp

// Classes, instances and modules are all frames in the arena.  A class frame
// holds the definitions of the class body and extends the frame of the
// parent class.  An instance frame extends its class frame.  Constructors
// receive the class frame as self, so fields they set are stored in the
// class frame and shared by its instances; (set (prop obj name) value) on an
// instance stores name in the instance frame.

func opClass(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 4 {
		return nil, invalidf("invalid class definition: %v", form)
	}
	name := form.Cells[1]
	if name.Type != LSymbol {
		return nil, invalidf("invalid class name: %v", name)
	}
	parentVal, err := ev.Eval(form.Cells[2], env)
	if err != nil {
		return nil, err
	}
	var parent *LVal
	outer := env
	switch parentVal.Type {
	case LVoid:
	case LObject:
		parent = parentVal
		outer, err = ev.Arena.Frame(parent.Frame)
		if err != nil {
			return nil, err
		}
	default:
		return nil, invalidf("invalid parent class: %v", parentVal)
	}

	frame := NewEnv(outer)
	h := ev.Arena.Push(frame)
	for _, expr := range classBody(form.Cells[3]) {
		_, err := ev.Eval(expr, frame)
		if err != nil {
			return nil, err
		}
	}
	ev.Logger.Debug("class declared", "name", name.Str, "frame", h, "members", len(frame.Scope))
	return env.Define(name.Str, Object(h, parent, true)), nil
}

// classBody returns the forms of body which are evaluated directly in a class
// frame.
func classBody(body *LVal) []*LVal {
	if body.IsForm("begin") {
		return body.Cells[1:]
	}
	if body.Type == LList && len(body.Cells) > 0 && body.Cells[0].Type == LList && isSequenceHead(body.Cells[0]) {
		return body.Cells
	}
	return []*LVal{body}
}

func opNew(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) < 2 {
		return nil, invalidf("invalid new expression: %v", form)
	}
	cls, err := ev.Eval(form.Cells[1], env)
	if err != nil {
		return nil, err
	}
	if cls.Type != LObject {
		return nil, invalidf("cannot instantiate %v: not a class", form.Cells[1])
	}
	classFrame, err := ev.Arena.Frame(cls.Frame)
	if err != nil {
		return nil, err
	}
	instance := NewEnv(classFrame)

	args := form.Cells[2:]
	ctor, ok := instance.Get(ConstructorSymbol)
	if !ok {
		if len(args) > 0 {
			return nil, reasonf("%v has no %s", form.Cells[1], ConstructorSymbol)
		}
		return Object(ev.Arena.Push(instance), cls.Parent, false), nil
	}
	if ctor.Type != LFun {
		return nil, reasonf("%s of %v is not a function", ConstructorSymbol, form.Cells[1])
	}
	if len(ctor.Params) != len(args)+1 {
		return nil, reasonf("function %s took %d arguments, %d provided",
			ConstructorSymbol, len(ctor.Params), len(args)+1)
	}
	// self is the class frame the constructor was defined in
	self := Object(ctor.Frame, nil, true)
	vals := make([]*LVal, 0, len(args)+1)
	vals = append(vals, self)
	for _, arg := range args {
		val, err := ev.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	_, err = ev.invoke(ConstructorSymbol, form.Source, ctor, vals)
	if err != nil {
		return nil, err
	}
	return Object(ev.Arena.Push(instance), cls.Parent, false), nil
}

func opProp(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	frame, name, err := ev.propTarget(form, env)
	if err != nil {
		return nil, err
	}
	return frame.Lookup(name)
}

// setProp evaluates expr and defines the result in the frame of the object
// referenced by target, a (prop obj name) form.
func (ev *Evaluator) setProp(target *LVal, expr *LVal, env *LEnv) (*LVal, error) {
	val, err := ev.Eval(expr, env)
	if err != nil {
		return nil, err
	}
	frame, name, err := ev.propTarget(target, env)
	if err != nil {
		return nil, err
	}
	return frame.Define(name, val), nil
}

func (ev *Evaluator) propTarget(form *LVal, env *LEnv) (*LEnv, string, error) {
	if len(form.Cells) != 3 {
		return nil, "", invalidf("invalid property access: %v", form)
	}
	name := form.Cells[2]
	if name.Type != LSymbol {
		return nil, "", invalidf("invalid property name: %v", name)
	}
	obj, err := ev.Eval(form.Cells[1], env)
	if err != nil {
		return nil, "", err
	}
	if obj.Type != LObject {
		return nil, "", invalidf("property access on non-object: %v", form.Cells[1])
	}
	frame, err := ev.Arena.Frame(obj.Frame)
	if err != nil {
		return nil, "", err
	}
	return frame, name.Str, nil
}

func opSuper(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 2 {
		return nil, invalidf("invalid super call: %v", form)
	}
	obj, err := ev.Eval(form.Cells[1], env)
	if err != nil {
		return nil, err
	}
	if obj.Type != LObject {
		return nil, invalidf("invalid super call on non class: %v", form.Cells[1])
	}
	if obj.Parent == nil {
		return nil, reasonf("cannot find parent")
	}
	return obj.Parent, nil
}
