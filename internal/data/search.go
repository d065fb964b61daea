package data

// NameSearch returns the datasets recorded by the component called name.
// When no component matches, datasets whose data file is called name are
// returned instead.
func NameSearch(name string, datasets []*McStasData) ([]*McStasData, error) {
	if len(datasets) == 0 {
		return nil, &InputError{Message: "name_search needs a non-empty list of McStasData as input"}
	}
	for _, d := range datasets {
		if d == nil || d.Metadata == nil {
			return nil, &InputError{Message: "name_search needs objects of type McStasData as input"}
		}
	}

	var found []*McStasData
	for _, d := range datasets {
		if d.Name == name {
			found = append(found, d)
		}
	}
	if len(found) == 0 {
		for _, d := range datasets {
			if d.Metadata.Filename == name {
				found = append(found, d)
			}
		}
	}
	if len(found) == 0 {
		return nil, &NotFoundError{Name: name}
	}
	return found, nil
}

// NamePlotOptions applies opts to every dataset NameSearch finds.
func NamePlotOptions(name string, datasets []*McStasData, opts ...PlotOption) error {
	found, err := NameSearch(name, datasets)
	if err != nil {
		return err
	}
	for _, d := range found {
		d.SetPlotOptions(opts...)
	}
	return nil
}
