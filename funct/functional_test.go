package funct

import (
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	doubled, err := Map([]int{1, 2, 3}, func(x int) (int, error) {
		return x * 2, nil
	})
	if err != nil {
		t.Fatalf("Map returned error: %v", err)
	}
	if len(doubled) != 3 || doubled[0] != 2 || doubled[2] != 6 {
		t.Fatalf("doubled = %v", doubled)
	}

	_, err = Map([]string{"1", "x"}, func(x string) (int, error) {
		return strconv.Atoi(x)
	})
	if err == nil {
		t.Fatal("Map must propagate the transformer error")
	}
}

func TestIndex(t *testing.T) {
	words := []string{"mongo", "nats", "gin"}
	if i := Index(words, func(x string) bool { return x == "nats" }); i != 1 {
		t.Fatalf("Index = %d, want 1", i)
	}
	if i := Index(words, func(x string) bool { return x == "redis" }); i != -1 {
		t.Fatalf("Index = %d, want -1", i)
	}
}

func TestSome(t *testing.T) {
	numbers := []int{1, 3, 5}
	if !Some(numbers, func(x int) bool { return x > 4 }) {
		t.Fatal("Some must find 5")
	}
	if Some(numbers, func(x int) bool { return x%2 == 0 }) {
		t.Fatal("no even numbers present")
	}
	if Some([]int{}, func(x int) bool { return true }) {
		t.Fatal("Some over an empty slice is false")
	}
}
