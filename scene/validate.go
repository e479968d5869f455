package scene

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid project")

// Validate checks the structural invariants of a project and reports every
// violation it finds.
func (p Project) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("project id is empty"))
	}
	if !ValidProjectType(p.Type) {
		errs = append(errs, fmt.Errorf("unknown project type %q", p.Type))
	}
	if _, ok := p.ActiveScene(); !ok {
		errs = append(errs, fmt.Errorf("active scene %q does not exist", p.ActiveSceneID))
	}

	sceneIDs := make(map[string]bool, len(p.Scenes))
	for _, s := range p.Scenes {
		if sceneIDs[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate scene id %q", s.ID))
		}
		sceneIDs[s.ID] = true
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scene %q: %w", s.ID, err))
		}
	}
	for _, a := range p.Assets {
		if !ValidAssetType(a.Type) {
			errs = append(errs, fmt.Errorf("asset %q: unknown type %q", a.ID, a.Type))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (s Scene) Validate() error {
	var errs []error
	if s.Width < 0 || s.Height < 0 {
		errs = append(errs, fmt.Errorf("negative size %vx%v", s.Width, s.Height))
	}
	ids := make(map[string]bool, len(s.Objects))
	for _, o := range s.Objects {
		if ids[o.ID] {
			errs = append(errs, fmt.Errorf("duplicate object id %q", o.ID))
		}
		ids[o.ID] = true
		if err := o.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("object %q: %w", o.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (o GameObject) Validate() error {
	var errs []error
	if o.ID == "" {
		errs = append(errs, errors.New("empty id"))
	}
	if !ValidObjectType(o.Type) {
		errs = append(errs, fmt.Errorf("unknown type %q", o.Type))
	}
	if o.Width < 0 || o.Height < 0 {
		errs = append(errs, fmt.Errorf("negative size %vx%v", o.Width, o.Height))
	}
	if err := CheckProperties(o.Type, o.Properties); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
