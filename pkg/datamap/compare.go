package datamap

import (
	"cmp"
	"fmt"
	"github.com/skybi/datamap/pkg/container"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StringComparator compares entries by their "key,value" string form using root locale collation.
// It orders by the textual form only, so 10 sorts before 9; use ByKey or ByValue for typed ordering.
// The returned comparator must not be shared between goroutines.
func StringComparator[K comparable, V any]() container.Comparator[K, V] {
	collator := collate.New(language.Und)
	return func(a, b container.Entry[K, V]) int {
		return collator.CompareString(entryString(a), entryString(b))
	}
}

func entryString[K comparable, V any](entry container.Entry[K, V]) string {
	return fmt.Sprintf("%v,%v", entry.Key, entry.Value)
}

// ByKey orders entries by their keys
func ByKey[K constraints.Ordered, V any]() container.Comparator[K, V] {
	return func(a, b container.Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	}
}

// ByValue orders entries by their values
func ByValue[K comparable, V constraints.Ordered]() container.Comparator[K, V] {
	return func(a, b container.Entry[K, V]) int {
		return cmp.Compare(a.Value, b.Value)
	}
}

// Reverse inverts the order of a comparator
func Reverse[K comparable, V any](comparator container.Comparator[K, V]) container.Comparator[K, V] {
	return func(a, b container.Entry[K, V]) int {
		return comparator(b, a)
	}
}
