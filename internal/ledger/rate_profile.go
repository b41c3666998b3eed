package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wiw0411-bot/tennisforum/internal/docstore"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
)

// RateProfile is the tariff sheet of one teaching location.
type RateProfile struct {
	ID    string               `json:"id"`
	Name  string               `json:"name" example:"Gangnam"`
	Rates lessons.RateSettings `json:"rates"`
}

// RateProfiles stores the rate profiles of one user.
type RateProfiles struct {
	store  docstore.Store
	userID string
}

// NewRateProfiles returns the rate profile store for a user.
func NewRateProfiles(store docstore.Store, userID string) *RateProfiles {
	return &RateProfiles{store: store, userID: userID}
}

// profilePayload is the persisted shape. The document key carries the id.
type profilePayload struct {
	Name  string               `json:"name"`
	Rates lessons.RateSettings `json:"rates"`
}

// Create validates and saves a new profile. Both rate maps are
// normalized so that every lesson type has an entry.
func (r *RateProfiles) Create(ctx context.Context, name string, rates lessons.RateSettings) (RateProfile, error) {
	if r.userID == "" {
		return RateProfile{}, ErrNoIdentity
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return RateProfile{}, ErrProfileNameEmpty
	}

	profile := RateProfile{
		ID:    uuid.NewString(),
		Name:  name,
		Rates: rates.Normalized(),
	}

	err := r.save(ctx, profile)
	if err != nil {
		return RateProfile{}, err
	}

	return profile, nil
}

// Update replaces the mutable fields of an existing profile. The id is
// immutable. Historical revenue entries keep their name snapshot.
func (r *RateProfiles) Update(ctx context.Context, id, name string, rates lessons.RateSettings) (RateProfile, error) {
	if r.userID == "" {
		return RateProfile{}, ErrNoIdentity
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return RateProfile{}, ErrProfileNameEmpty
	}

	_, err := r.Get(ctx, id)
	if err != nil {
		return RateProfile{}, err
	}

	profile := RateProfile{
		ID:    id,
		Name:  name,
		Rates: rates.Normalized(),
	}

	err = r.save(ctx, profile)
	if err != nil {
		return RateProfile{}, err
	}

	return profile, nil
}

// Delete removes a profile.
//
// Revenue entries referencing the profile are intentionally left alone,
// they keep displaying through their locationName snapshot. Saving new
// revenue against the deleted id fails with ErrProfileNotFound.
func (r *RateProfiles) Delete(ctx context.Context, id string) error {
	if r.userID == "" {
		return ErrNoIdentity
	}

	_, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	return r.store.Delete(ctx, r.userID, docstore.CollectionRateProfiles, id)
}

// Get returns one profile by id.
func (r *RateProfiles) Get(ctx context.Context, id string) (RateProfile, error) {
	if r.userID == "" {
		return RateProfile{}, ErrProfileNotFound
	}

	data, err := r.store.Get(ctx, r.userID, docstore.CollectionRateProfiles, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return RateProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return RateProfile{}, err
	}

	var payload profilePayload
	err = json.Unmarshal(data, &payload)
	if err != nil {
		return RateProfile{}, err
	}

	return RateProfile{ID: id, Name: payload.Name, Rates: payload.Rates}, nil
}

// List returns all profiles of the user. Callers must not rely on any
// particular order.
func (r *RateProfiles) List(ctx context.Context) ([]RateProfile, error) {
	if r.userID == "" {
		return []RateProfile{}, nil
	}

	documents, err := r.store.All(ctx, r.userID, docstore.CollectionRateProfiles)
	if err != nil {
		return nil, err
	}

	profiles := make([]RateProfile, 0, len(documents))
	for _, doc := range documents {
		var payload profilePayload
		err = json.Unmarshal(doc.Data, &payload)
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, RateProfile{ID: doc.Key, Name: payload.Name, Rates: payload.Rates})
	}

	return profiles, nil
}

func (r *RateProfiles) save(ctx context.Context, profile RateProfile) error {
	data, err := json.Marshal(profilePayload{Name: profile.Name, Rates: profile.Rates})
	if err != nil {
		return err
	}

	return r.store.Set(ctx, r.userID, docstore.CollectionRateProfiles, profile.ID, data)
}
