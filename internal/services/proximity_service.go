package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/models"
	"github.com/crisisdesk/backend/internal/places"
	"go.uber.org/zap"
)

const (
	// earthRadiusKm is the spherical-Earth radius used by the haversine formula
	earthRadiusKm = 6371.0
	// boxHalfWidthDeg is the angular half-width of the provider bounding box (~3km)
	boxHalfWidthDeg = 0.03
	// perCategoryLimit caps each category's ranked list
	perCategoryLimit = 2
	// providerResultLimit caps raw provider results per query
	providerResultLimit = 20
)

// escalationRadiiKm is the ascending radius sequence tried until a category
// yields at least one candidate
var escalationRadiiKm = []float64{5, 10, 15, 20}

// Category pairs a display label with the provider's amenity tag
type Category struct {
	Label   string
	Amenity string
}

// DefaultCategories are the emergency center types searched for every request
var DefaultCategories = []Category{
	{Label: "Hospital", Amenity: "hospital"},
	{Label: "Police Station", Amenity: "police"},
	{Label: "Fire Station", Amenity: "fire_station"},
}

// PlaceSearcher is the interface that wraps the external place-search provider
type PlaceSearcher interface {
	// Method Search queries the provider for places matching the amenity tag
	// within the bounding box, capped at limit results.
	//
	// If the provider call fails (network, status, parse), the error will be
	// returned together with a "nil" value.
	Search(ctx context.Context, amenity string, box places.BoundingBox, limit int) ([]places.Result, error)
}

// CentersCache is the interface that wraps the optional proximity result cache
type CentersCache interface {
	Get(ctx context.Context, lat, lng float64) ([]models.PlaceCandidate, bool)
	Set(ctx context.Context, lat, lng float64, centers []models.PlaceCandidate)
}

// proximityService ranks nearby emergency centers per category
type proximityService struct {
	searcher   PlaceSearcher
	cache      CentersCache
	logger     *zap.Logger
	categories []Category
	radiiKm    []float64
}

// NewProximityService creates a new proximity service. The cache may be nil.
func NewProximityService(searcher PlaceSearcher, cache CentersCache, logger *zap.Logger) *proximityService {
	return &proximityService{
		searcher:   searcher,
		cache:      cache,
		logger:     logger,
		categories: DefaultCategories,
		radiiKm:    escalationRadiiKm,
	}
}

// FindNearby returns emergency centers around the origin, at most two per
// category, ordered by ascending distance across categories.
//
// A provider failure degrades only the affected category: the call still
// returns results for the categories that succeeded.
func (s *proximityService) FindNearby(ctx context.Context, lat, lng float64) ([]models.PlaceCandidate, error) {
	if lat < -90 || lat > 90 {
		return nil, apperrors.Validation("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return nil, apperrors.Validation("longitude must be between -180 and 180")
	}

	if s.cache != nil {
		if centers, ok := s.cache.Get(ctx, lat, lng); ok {
			return centers, nil
		}
	}

	box := places.NewBoundingBox(lat, lng, boxHalfWidthDeg)

	// Each category writes a disjoint slot, so no mutex is needed before the join.
	perCategory := make([][]models.PlaceCandidate, len(s.categories))
	failed := make([]bool, len(s.categories))

	var wg sync.WaitGroup
	for i, category := range s.categories {
		wg.Add(1)
		go func(i int, category Category) {
			defer wg.Done()
			perCategory[i], failed[i] = s.searchCategory(ctx, category, lat, lng, box)
		}(i, category)
	}
	wg.Wait()

	centers := []models.PlaceCandidate{}
	for _, candidates := range perCategory {
		centers = append(centers, candidates...)
	}

	// Final cross-category ordering is purely by proximity.
	sort.Slice(centers, func(a, b int) bool {
		return centers[a].DistanceKm < centers[b].DistanceKm
	})

	// A degraded result must not mask a later recovery: cache only when every
	// category's provider call succeeded. A genuinely empty area still caches.
	cacheable := true
	for _, f := range failed {
		if f {
			cacheable = false
			break
		}
	}
	if s.cache != nil && cacheable {
		s.cache.Set(ctx, lat, lng, centers)
	}

	return centers, nil
}

// searchCategory runs the radius escalation loop for one category and returns
// its ranked top candidates. Provider failures are logged and yield an empty
// list with the failed flag set; a location with no candidates at any radius
// yields an empty list, not an error.
func (s *proximityService) searchCategory(ctx context.Context, category Category, lat, lng float64, box places.BoundingBox) ([]models.PlaceCandidate, bool) {
	for _, radiusKm := range s.radiiKm {
		results, err := s.searcher.Search(ctx, category.Amenity, box, providerResultLimit)
		if err != nil {
			s.logger.Warn("place search failed for category",
				zap.String("category", category.Label),
				zap.Float64("radiusKm", radiusKm),
				zap.Error(err),
			)
			return nil, true
		}

		candidates := rankCandidates(results, category.Label, lat, lng, radiusKm)
		if len(candidates) > 0 {
			return candidates, false
		}
	}

	return nil, false
}

// rankCandidates filters provider results to the acceptance radius, sorts by
// ascending distance and truncates to the per-category cap. The same
// haversine distance is the filter predicate and the sort key, keeping the
// two consistent.
func rankCandidates(results []places.Result, label string, lat, lng, radiusKm float64) []models.PlaceCandidate {
	candidates := []models.PlaceCandidate{}
	for _, result := range results {
		placeLat, err := strconv.ParseFloat(result.Lat, 64)
		if err != nil {
			continue
		}
		placeLon, err := strconv.ParseFloat(result.Lon, 64)
		if err != nil {
			continue
		}

		distance := haversineKm(lat, lng, placeLat, placeLon)
		if distance > radiusKm {
			continue
		}

		candidates = append(candidates, models.PlaceCandidate{
			Name:       result.DisplayName,
			Type:       label,
			Latitude:   placeLat,
			Longitude:  placeLon,
			DistanceKm: distance,
		})
	}

	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].DistanceKm < candidates[b].DistanceKm
	})

	if len(candidates) > perCategoryLimit {
		candidates = candidates[:perCategoryLimit]
	}

	return candidates
}

// haversineKm computes the great-circle distance between two coordinates in
// decimal degrees on a spherical Earth
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
