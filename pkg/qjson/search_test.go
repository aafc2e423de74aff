package qjson

import "testing"

func TestCount(t *testing.T) {
	if Count(Get(docJ, "children")) != 3 {
		t.Errorf("Count(children) = %d; want 3", Count(Get(docJ, "children")))
	}
	if Count(Get(docJ, "age")) != 1 {
		t.Errorf("Count(age) = %d; want 1 (scalar counts as one)", Count(Get(docJ, "age")))
	}
	if Count(Get(docJ, "missing")) != 0 {
		t.Errorf("Count(missing) = %d; want 0", Count(Get(docJ, "missing")))
	}
}

func TestSumAndAvg(t *testing.T) {
	ages := Get(docJ, "friends.#.age")
	if got := Sum(ages); got != 44+68+47 {
		t.Errorf("Sum(ages) = %v; want %v", got, 44+68+47)
	}
	if got := Avg(ages); got != (44.0+68.0+47.0)/3 {
		t.Errorf("Avg(ages) = %v; want %v", got, (44.0+68.0+47.0)/3)
	}
}

func TestAvgEmpty(t *testing.T) {
	if Avg(Get(docJ, "missing")) != 0 {
		t.Errorf("Avg(missing) != 0; want 0")
	}
}

func TestMinMax(t *testing.T) {
	ages := Get(docJ, "friends.#.age")
	if Min(ages).Int64() != 44 {
		t.Errorf("Min(ages) = %d; want 44", Min(ages).Int64())
	}
	if Max(ages).Int64() != 68 {
		t.Errorf("Max(ages) = %d; want 68", Max(ages).Int64())
	}
}

func TestMinMaxEmpty(t *testing.T) {
	if Min(Get(docJ, "missing")).Exists() {
		t.Errorf("Min(missing) exists; want NotExist")
	}
	if Max(Get(docJ, "missing")).Exists() {
		t.Errorf("Max(missing) exists; want NotExist")
	}
}

func TestFilterAndFirst(t *testing.T) {
	friends := Get(docJ, "friends")
	older := Filter(friends, func(v Value) bool { return v.Get("age").Int64() > 45 })
	if len(older) != 2 {
		t.Fatalf("Filter(age>45) len = %d; want 2", len(older))
	}
	first := First(friends, func(v Value) bool { return v.Get("last").String() == "Craig" })
	if first.Get("first").String() != "Roger" {
		t.Errorf("First(last==Craig) = %q; want Roger", first.Get("first").String())
	}
}

func TestFirstNoMatch(t *testing.T) {
	friends := Get(docJ, "friends")
	got := First(friends, func(v Value) bool { return v.Get("last").String() == "Nobody" })
	if got.Exists() {
		t.Errorf("First with no match exists; want NotExist")
	}
}

func TestDistinct(t *testing.T) {
	v := Parse(`["fb","tw","fb","ig","tw"]`)
	out := Distinct(v)
	if len(out) != 3 {
		t.Fatalf("Distinct len = %d; want 3", len(out))
	}
	want := []string{"fb", "tw", "ig"}
	for i, w := range want {
		if out[i].String() != w {
			t.Errorf("Distinct[%d] = %q; want %q", i, out[i].String(), w)
		}
	}
}

func TestGroupBy(t *testing.T) {
	friends := Get(docJ, "friends")
	groups := GroupBy(friends, "last")
	if len(groups["Murphy"]) != 2 {
		t.Errorf("GroupBy(last)[Murphy] len = %d; want 2", len(groups["Murphy"]))
	}
	if len(groups["Craig"]) != 1 {
		t.Errorf("GroupBy(last)[Craig] len = %d; want 1", len(groups["Craig"]))
	}
}

func TestSortBy(t *testing.T) {
	friends := Get(docJ, "friends")
	sorted := SortBy(friends, "age", true)
	want := []int64{44, 47, 68}
	for i, w := range want {
		if sorted[i].Get("age").Int64() != w {
			t.Errorf("SortBy(age)[%d] = %d; want %d", i, sorted[i].Get("age").Int64(), w)
		}
	}
}

func TestCoerceTo(t *testing.T) {
	var age int
	if err := CoerceTo(Get(docJ, "age"), &age); err != nil {
		t.Fatalf("CoerceTo error: %v", err)
	}
	if age != 37 {
		t.Errorf("CoerceTo age = %d; want 37", age)
	}
}

func TestCollectFloat64(t *testing.T) {
	got := CollectFloat64(docJ, "friends.#.age")
	want := []float64{44, 68, 47}
	if len(got) != len(want) {
		t.Fatalf("CollectFloat64 len = %d; want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("CollectFloat64[%d] = %v; want %v", i, got[i], w)
		}
	}
}
