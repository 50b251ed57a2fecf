package orm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bholemart/pkg/orm"
	"github.com/shashiranjanraj/bholemart/pkg/testkit"
)

type widget struct {
	gorm.Model
	Name string
}

type shelf struct {
	gorm.Model
	Label string
}

type crate struct {
	gorm.Model
	ShelfID uint
	Shelf   shelf
}

func TestFirstMapsMissingRowToErrNotFound(t *testing.T) {
	testkit.SetupDB(t, &widget{})

	var w widget
	err := orm.DB().Model(&widget{}).Where("id = ?", 999).First(&w)
	assert.ErrorIs(t, err, orm.ErrNotFound)
}

func TestCreateAndGet(t *testing.T) {
	testkit.SetupDB(t, &widget{})

	require.NoError(t, orm.DB().Create(&widget{Name: "a"}))
	require.NoError(t, orm.DB().Create(&widget{Name: "b"}))

	var all []widget
	require.NoError(t, orm.DB().Model(&widget{}).Order("id desc").Get(&all))
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name)

	count, err := orm.DB().Model(&widget{}).Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPreloadFillsAssociation(t *testing.T) {
	testkit.SetupDB(t, &shelf{}, &crate{})

	s := shelf{Label: "top"}
	require.NoError(t, orm.DB().Create(&s))
	require.NoError(t, orm.DB().Create(&crate{ShelfID: s.ID}))

	var crates []crate
	require.NoError(t, orm.DB().Model(&crate{}).Preload("Shelf").Order("id desc").Get(&crates))
	require.Len(t, crates, 1)
	assert.Equal(t, "top", crates[0].Shelf.Label)
}

func TestDeleteMissingRowIsErrNotFound(t *testing.T) {
	testkit.SetupDB(t, &widget{})

	err := orm.DB().Model(&widget{}).Where("id = ?", 999).Delete(&widget{})
	assert.ErrorIs(t, err, orm.ErrNotFound)
}

func TestUnscopedDeleteIsPermanent(t *testing.T) {
	db := testkit.SetupDB(t, &widget{})

	w := widget{Name: "gone"}
	require.NoError(t, orm.DB().Create(&w))
	require.NoError(t, orm.DB().Model(&widget{}).Unscoped().Where("id = ?", w.ID).Delete(&widget{}))

	var count int64
	require.NoError(t, db.Unscoped().Model(&widget{}).Count(&count).Error)
	assert.Zero(t, count)
}
