package value_test

import (
	"testing"

	"lox/internal/value"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"nil", value.Nil, false},
		{"false", value.MakeBool(false), false},
		{"true", value.MakeBool(true), true},
		{"zero", value.MakeNumber(0), true},
		{"empty string", value.MakeString(""), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.IsTruthy(); got != c.want {
				t.Errorf("IsTruthy() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEquals(t *testing.T) {
	if !value.MakeNumber(1).Equals(value.MakeNumber(1)) {
		t.Error("1 should equal 1")
	}
	if value.MakeNumber(1).Equals(value.MakeString("1")) {
		t.Error("number should never equal string, even with the same print form")
	}
	if !value.Nil.Equals(value.Nil) {
		t.Error("nil should equal nil")
	}
	if value.MakeBool(true).Equals(value.MakeBool(false)) {
		t.Error("true should not equal false")
	}
	if !value.MakeString("abc").Equals(value.MakeString("abc")) {
		t.Error("equal-content strings should be equal")
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		v    value.Value
		want string
	}{
		{value.Nil, "nil"},
		{value.MakeBool(true), "true"},
		{value.MakeBool(false), "false"},
		{value.MakeNumber(3), "3"},
		{value.MakeNumber(3.5), "3.5"},
		{value.MakeString("hi"), "hi"},
	}
	for _, c := range cases {
		if got := value.Stringify(c.v); got != c.want {
			t.Errorf("Stringify(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestEnvSlotsAndAncestor(t *testing.T) {
	global := value.NewGlobalEnv()
	global.DefineGlobal("x", value.MakeNumber(1))

	child := value.NewEnv(global, 2)
	child.SetSlot(0, value.MakeNumber(10))
	grandchild := value.NewEnv(child, 1)
	grandchild.SetSlot(0, value.MakeNumber(20))

	if got := grandchild.Ancestor(0).GetSlot(0); got.Num != 20 {
		t.Errorf("Ancestor(0) slot 0 = %v, want 20", got.Num)
	}
	if got := grandchild.Ancestor(1).GetSlot(0); got.Num != 10 {
		t.Errorf("Ancestor(1) slot 0 = %v, want 10", got.Num)
	}
	if v, ok := global.GetGlobal("x"); !ok || v.Num != 1 {
		t.Errorf("GetGlobal(x) = %v, %v, want 1, true", v, ok)
	}
	if global.AssignGlobal("undefined", value.Nil) {
		t.Error("AssignGlobal on an undeclared name should fail")
	}
}

type fakeCaller struct{}

func (fakeCaller) CallUserFn(*value.UserFn, []value.Value) (value.Value, error) {
	return value.Nil, nil
}

func TestClassConstructsInstanceAndBindsMethods(t *testing.T) {
	greet := &value.UserFn{Name: "greet"}
	class := &value.Class{Name: "Greeter", Methods: map[string]*value.UserFn{"greet": greet}}

	result, err := class.Call(fakeCaller{}, nil)
	if err != nil {
		t.Fatalf("Call returned error: %v", err)
	}
	instance, ok := result.Obj.(*value.Instance)
	if !ok {
		t.Fatalf("Call result is not an *Instance: %T", result.Obj)
	}

	bound, ok := instance.Get("greet")
	if !ok {
		t.Fatal("instance.Get(greet) should find the class method")
	}
	fn, ok := bound.Obj.(*value.UserFn)
	if !ok {
		t.Fatalf("bound greet is not a *UserFn: %T", bound.Obj)
	}
	if fn.Closure.GetSlot(0).Obj != instance {
		t.Error("Bind should place the instance at slot 0 of the bound closure")
	}

	instance.Set("name", value.MakeString("Ada"))
	if v, ok := instance.Get("name"); !ok || *v.Str != "Ada" {
		t.Errorf("instance.Get(name) = %v, %v, want Ada, true", v, ok)
	}
}
