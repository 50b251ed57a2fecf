package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bholemart/pkg/collection"
)

type item struct {
	Name     string
	Category string
	Price    int
}

var stock = []item{
	{"Fresh Apples", "Fruits", 120},
	{"Organic Bananas", "Fruits", 40},
	{"Farm Fresh Milk", "Dairy", 55},
}

func TestMap(t *testing.T) {
	names := collection.Map(stock, func(i item) string { return i.Name })
	assert.Equal(t, []string{"Fresh Apples", "Organic Bananas", "Farm Fresh Milk"}, names)
	assert.Empty(t, collection.Map(nil, func(i item) string { return i.Name }))
}

func TestFilter(t *testing.T) {
	cheap := collection.Filter(stock, func(i item) bool { return i.Price < 100 })
	assert.Len(t, cheap, 2)
	assert.Equal(t, "Organic Bananas", cheap[0].Name)
}

func TestFirst(t *testing.T) {
	dairy, ok := collection.First(stock, func(i item) bool { return i.Category == "Dairy" })
	assert.True(t, ok)
	assert.Equal(t, "Farm Fresh Milk", dairy.Name)

	_, ok = collection.First(stock, func(i item) bool { return i.Category == "Bakery" })
	assert.False(t, ok)
}

func TestGroupByKeepsOrderWithinGroups(t *testing.T) {
	grouped := collection.GroupBy(stock, func(i item) string { return i.Category })
	assert.Len(t, grouped, 2)
	assert.Equal(t, "Fresh Apples", grouped["Fruits"][0].Name)
	assert.Equal(t, "Organic Bananas", grouped["Fruits"][1].Name)
}

func TestKeyByLastWins(t *testing.T) {
	byCategory := collection.KeyBy(stock, func(i item) string { return i.Category })
	assert.Len(t, byCategory, 2)
	assert.Equal(t, "Organic Bananas", byCategory["Fruits"].Name)
}

func TestReduce(t *testing.T) {
	total := collection.Reduce(stock, 0, func(sum int, i item) int { return sum + i.Price })
	assert.Equal(t, 215, total)
	assert.Equal(t, 42, collection.Reduce(nil, 42, func(sum int, i item) int { return sum + i.Price }))
}
