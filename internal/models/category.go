package models

import (
	"encoding/json"
	"sort"

	"eonet/internal/apperr"
)

// Category is the closed EONET category enumeration. Labels are
// case-sensitive and use the mixed-case spelling of the upstream catalog.
type Category string

const (
	CategoryWildfires    Category = "wildfires"
	CategorySevereStorms Category = "severeStorms"
	CategoryVolcanoes    Category = "volcanoes"
	CategorySeaLakeIce   Category = "seaLakeIce"
	CategoryEarthquakes  Category = "earthquakes"
	CategoryFloods       Category = "floods"
	CategoryLandslides   Category = "landslides"
	CategorySnow         Category = "snow"
	CategoryDrought      Category = "drought"
	CategoryDustHaze     Category = "dustHaze"
	CategoryManmade      Category = "manmade"
	CategoryWaterColor   Category = "waterColor"
)

// Categories returns the twelve canonical values in declaration order.
func Categories() []Category {
	return []Category{
		CategoryWildfires,
		CategorySevereStorms,
		CategoryVolcanoes,
		CategorySeaLakeIce,
		CategoryEarthquakes,
		CategoryFloods,
		CategoryLandslides,
		CategorySnow,
		CategoryDrought,
		CategoryDustHaze,
		CategoryManmade,
		CategoryWaterColor,
	}
}

// CategoryNames returns the labels sorted alphabetically, for error messages.
func CategoryNames() []string {
	all := Categories()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = string(c)
	}
	sort.Strings(names)
	return names
}

// ParseCategory matches exactly, including case: "Wildfires" is rejected.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", apperr.InvalidCategory(s, CategoryNames())
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWildfires, CategorySevereStorms, CategoryVolcanoes,
		CategorySeaLakeIce, CategoryEarthquakes, CategoryFloods,
		CategoryLandslides, CategorySnow, CategoryDrought,
		CategoryDustHaze, CategoryManmade, CategoryWaterColor:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// UnmarshalJSON rejects unknown labels so a bad category in a request
// body surfaces as a typed parse error instead of slipping through as a
// plain string.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
