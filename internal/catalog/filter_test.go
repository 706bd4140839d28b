package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCars() []Car {
	return []Car{
		{ID: 1, Name: "Audi A4 Premium", Category: "Sedan", Vin: "WAUENAF49MN123456", Color: "Manhattan Gray"},
		{ID: 2, Name: "BMW X5 M Sport", Category: "SUV", Vin: "5UXCR6C59M9C12345", Color: "Space Gray"},
		{ID: 3, Name: "Ford Mustang GT", Category: "Coupe", Vin: "1FA6P8CF9M5123456", Color: "Race Red"},
		{ID: 4, Name: "Toyota RAV4 Hybrid", Category: "SUV", Vin: "2T3P1RFV9MC123456", Color: "White"},
		{ID: 5, Name: "Bare Record", Category: "Sedan"},
	}
}

func Test_Project_NoFilterReturnsAllInOrder(t *testing.T) {
	cars := sampleCars()

	projection := Project(cars, "", "")

	assert.Equal(t, cars, projection)
}

func Test_Project_TermMatchesColor(t *testing.T) {
	// "red" appears only in the Mustang's color, not in any name or vin
	projection := Project(sampleCars(), "red", "")

	require.Len(t, projection, 1)
	assert.Equal(t, "Ford Mustang GT", projection[0].Name)
}

func Test_Project_TermMatchesNameCaseInsensitive(t *testing.T) {
	projection := Project(sampleCars(), "TOYOTA", "")

	require.Len(t, projection, 1)
	assert.EqualValues(t, 4, projection[0].ID)
}

func Test_Project_TermMatchesVin(t *testing.T) {
	projection := Project(sampleCars(), "wauenaf", "")

	require.Len(t, projection, 1)
	assert.Equal(t, "Audi A4 Premium", projection[0].Name)
}

func Test_Project_CategoryExactMatch(t *testing.T) {
	projection := Project(sampleCars(), "", "SUV")

	require.Len(t, projection, 2)
	for _, car := range projection {
		assert.Equal(t, "SUV", car.Category)
	}
}

func Test_Project_CategoryIsNotSubstringMatched(t *testing.T) {
	projection := Project(sampleCars(), "", "SU")

	assert.Empty(t, projection)
}

func Test_Project_TermAndCategoryCombine(t *testing.T) {
	projection := Project(sampleCars(), "gray", "SUV")

	require.Len(t, projection, 1)
	assert.Equal(t, "BMW X5 M Sport", projection[0].Name)
}

func Test_Project_EmptyOptionalFieldsNeverMatch(t *testing.T) {
	// the bare record has no vin/color; a non-empty term must not match them
	projection := Project(sampleCars(), "bare", "")
	require.Len(t, projection, 1)

	projection = Project(sampleCars(), "zzz", "")
	assert.Empty(t, projection)
}

func Test_Project_EmptyResultIsDistinguishable(t *testing.T) {
	projection := Project(sampleCars(), "no such car", "")

	assert.NotNil(t, projection)
	assert.Empty(t, projection)
}

func Test_Project_PreservesInputOrder(t *testing.T) {
	projection := Project(sampleCars(), "", "Sedan")

	require.Len(t, projection, 2)
	assert.EqualValues(t, 1, projection[0].ID)
	assert.EqualValues(t, 5, projection[1].ID)
}
