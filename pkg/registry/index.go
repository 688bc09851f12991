package registry

import "github.com/sabinadams/schematic/pkg/core"

// indexContract is the closed argument shape of @<prefix>.index(...).
// Optional arguments are pointers so that an explicit "" stays distinguishable
// from an absent key.
type indexContract struct {
	Fields []string `json:"fields" validate:"required,min=1,unique,dive,required"`
	Name   *string  `json:"name"`
	Type   *string  `json:"type" validate:"omitnil,oneof=id unique normal"`
	Where  *string  `json:"where"`
}

func validateIndex(raw core.RawAnnotation) (core.Record, error) {
	var c indexContract
	if err := decodeStrict(core.KindIndex, raw.Args, &c); err != nil {
		return nil, err
	}
	if err := checkConstraints(core.KindIndex, &c); err != nil {
		return nil, err
	}

	rec := core.IndexRecord{
		Name:   c.Name,
		Fields: c.Fields,
		Where:  c.Where,
	}
	if c.Type != nil {
		t := core.IndexType(*c.Type)
		rec.Type = &t
	}
	return rec, nil
}
