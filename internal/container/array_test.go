package container_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/infixcalc/internal/container"
	"github.com/karupanerura/infixcalc/internal/types"
)

func TestArrayPushPop(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 3, 17, 1024} {
		n := n
		t.Run("", func(t *testing.T) {
			t.Parallel()

			a := container.New[int64]()
			fresh := container.New[int64]()
			for i := 0; i < n; i++ {
				a.PushBack(int64(i))
			}
			if a.Len() != n {
				t.Fatalf("expect len %d but got %d", n, a.Len())
			}
			if a.Cap() < n {
				t.Fatalf("capacity %d is smaller than len %d", a.Cap(), n)
			}

			for i := n - 1; i >= 0; i-- {
				v, err := a.PopBack()
				if err != nil {
					t.Fatal(err)
				}
				if v != int64(i) {
					t.Errorf("expect %d but got %d", i, v)
				}
			}

			if !a.IsEmpty() || a.Len() != fresh.Len() {
				t.Errorf("expect empty array but got %s", a)
			}
			if diff := cmp.Diff(fresh.Values(), a.Values()); diff != "" {
				t.Errorf("unexpected values (-want +got):\n%s", diff)
			}
			if a.String() != fresh.String() {
				t.Errorf("expect %s but got %s", fresh, a)
			}
		})
	}
}

func TestArrayGrowth(t *testing.T) {
	t.Parallel()

	a := container.New[byte]()
	if a.Cap() != container.DefaultCapacity {
		t.Fatalf("expect default capacity %d but got %d", container.DefaultCapacity, a.Cap())
	}

	var caps []int
	for i := 0; i < 9; i++ {
		a.PushBack('+')
		caps = append(caps, a.Cap())
	}
	expected := []int{2, 2, 4, 4, 8, 8, 8, 8, 16}
	if diff := cmp.Diff(expected, caps); diff != "" {
		t.Errorf("unexpected capacities (-want +got):\n%s", diff)
	}

	var zero container.Array[int64]
	zero.PushBack(42)
	if zero.Cap() != container.DefaultCapacity || zero.Len() != 1 {
		t.Errorf("zero value array: len=%d cap=%d", zero.Len(), zero.Cap())
	}

	empty := container.NewWithCapacity[int64](0)
	empty.PushBack(1)
	empty.PushBack(2)
	empty.PushBack(3)
	if diff := cmp.Diff([]int64{1, 2, 3}, empty.Values()); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestArrayAccessors(t *testing.T) {
	t.Parallel()

	a := container.New[int64]()
	if _, err := a.Back(); !types.HasTag(err, types.EmptyContainerErrorTag) {
		t.Errorf("Back on empty array: unexpected error %v", err)
	}
	if _, err := a.Front(); !types.HasTag(err, types.EmptyContainerErrorTag) {
		t.Errorf("Front on empty array: unexpected error %v", err)
	}
	if _, err := a.PopBack(); !types.HasTag(err, types.EmptyContainerErrorTag) {
		t.Errorf("PopBack on empty array: unexpected error %v", err)
	}
	if _, err := a.At(0); !types.HasTag(err, types.IndexErrorTag) {
		t.Errorf("At on empty array: unexpected error %v", err)
	}

	a.PushBack(10)
	a.PushBack(20)
	a.PushBack(30)

	front, err := a.Front()
	if err != nil {
		t.Fatal(err)
	}
	back, err := a.Back()
	if err != nil {
		t.Fatal(err)
	}
	if *front != 10 || *back != 30 {
		t.Errorf("front=%d back=%d", *front, *back)
	}

	*back = 31
	v, err := a.At(2)
	if err != nil {
		t.Fatal(err)
	}
	if *v != 31 {
		t.Errorf("expect write through Back to be visible, got %d", *v)
	}
	if *a.Index(1) != 20 {
		t.Errorf("expect 20 but got %d", *a.Index(1))
	}

	for _, i := range []int{-1, 3, 100} {
		if _, err := a.At(i); !types.HasTag(err, types.IndexErrorTag) {
			t.Errorf("At(%d): unexpected error %v", i, err)
		}
	}

	if a.String() != "[10, 20, 31]" {
		t.Errorf("unexpected string %q", a.String())
	}
}

func TestArrayClone(t *testing.T) {
	t.Parallel()

	original := container.New[int64]()
	original.PushBack(1)
	original.PushBack(2)

	clone := original.Clone()
	clone.PushBack(3)
	*clone.Index(0) = 100

	if diff := cmp.Diff([]int64{1, 2}, original.Values()); diff != "" {
		t.Errorf("original changed by clone mutation (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{100, 2, 3}, clone.Values()); diff != "" {
		t.Errorf("unexpected clone values (-want +got):\n%s", diff)
	}

	if _, err := original.PopBack(); err != nil {
		t.Fatal(err)
	}
	original.PushBack(200)
	if diff := cmp.Diff([]int64{100, 2, 3}, clone.Values()); diff != "" {
		t.Errorf("clone changed by original mutation (-want +got):\n%s", diff)
	}
}

func TestArrayMoveAndReset(t *testing.T) {
	t.Parallel()

	source := container.New[int64]()
	for i := int64(0); i < 5; i++ {
		source.PushBack(i)
	}

	moved := source.Move()
	if diff := cmp.Diff([]int64{0, 1, 2, 3, 4}, moved.Values()); diff != "" {
		t.Errorf("unexpected moved values (-want +got):\n%s", diff)
	}
	if !source.IsEmpty() || source.Cap() != container.DefaultCapacity {
		t.Errorf("expect fresh source but got len=%d cap=%d", source.Len(), source.Cap())
	}

	source.PushBack(9)
	if diff := cmp.Diff([]int64{0, 1, 2, 3, 4}, moved.Values()); diff != "" {
		t.Errorf("moved array affected by source reuse (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{9}, source.Values()); diff != "" {
		t.Errorf("unexpected source values (-want +got):\n%s", diff)
	}

	moved.Reset()
	if !moved.IsEmpty() || moved.Cap() != container.DefaultCapacity {
		t.Errorf("expect reset array but got len=%d cap=%d", moved.Len(), moved.Cap())
	}
	moved.PushBack(7)
	if diff := cmp.Diff([]int64{7}, moved.Values()); diff != "" {
		t.Errorf("unexpected values after reset (-want +got):\n%s", diff)
	}
}
