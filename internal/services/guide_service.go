package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"roteiro/internal/models/entities"
	"roteiro/internal/models/response_models"
	"roteiro/internal/repositories"
	"roteiro/pkg/utils"
)

// The built-in guide catalog. Fixed content; only the visited set persists.
var guideCatalog = []entities.Destination{
	{
		ID: "1", City: "Paris", Name: "Eiffel Tower",
		ImageURL:    "https://picsum.photos/seed/eiffel/600/400",
		Description: "Iconic symbol of France with panoramic views over Paris.",
		Address:     "Champ de Mars, 5 Av. Anatole France, 75007 Paris",
		Hours:       "09:00 - 00:00",
		Category:    "Monument",
	},
	{
		ID: "2", City: "Paris", Name: "Louvre Museum",
		ImageURL:    "https://picsum.photos/seed/louvre/600/400",
		Description: "The largest art museum in the world and a historic monument in Paris.",
		Address:     "Rue de Rivoli, 75001 Paris",
		Hours:       "09:00 - 18:00",
		Category:    "Culture",
	},
	{
		ID: "3", City: "London", Name: "Big Ben",
		ImageURL:    "https://picsum.photos/seed/bigben/600/400",
		Description: "Nickname of the Great Bell of the clock at the Palace of Westminster.",
		Address:     "London SW1A 0AA",
		Hours:       "Always visible",
		Category:    "History",
	},
	{
		ID: "4", City: "Rome", Name: "Colosseum",
		ImageURL:    "https://picsum.photos/seed/colosseum/600/400",
		Description: "Roman amphitheatre built in the first century AD.",
		Address:     "Piazza del Colosseo, 1, 00184 Roma",
		Hours:       "08:30 - 19:00",
		Category:    "History",
	},
}

type GuideFilter struct {
	// City filters to one city; empty means all cities.
	City string
	// Search matches name and category; non-empty search also ranks
	// results by textual similarity.
	Search string
	// Visited, when set, keeps only visited (true) or unvisited (false)
	// destinations.
	Visited *bool
}

type GuideServiceInterface interface {
	Destinations(ctx context.Context, filter GuideFilter) ([]response_models.DestinationResponse, error)
	Cities() []string
	ToggleVisited(ctx context.Context, destinationID string) (visited bool, err error)
}

type GuideService struct {
	visited repositories.VisitedRepository
}

func NewGuideService(visited repositories.VisitedRepository) GuideServiceInterface {
	return &GuideService{visited: visited}
}

func (s *GuideService) visitedSet(ctx context.Context) (map[string]bool, error) {
	ids, err := s.visited.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("guide: %v, continuing with empty visited set", err)
			ids = nil
		} else {
			return nil, err
		}
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *GuideService) Destinations(ctx context.Context, filter GuideFilter) ([]response_models.DestinationResponse, error) {
	visited, err := s.visitedSet(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var queryVec = utils.TextVector(search)

	type scored struct {
		resp  response_models.DestinationResponse
		score float32
	}
	var results []scored

	for _, d := range guideCatalog {
		if filter.City != "" && d.City != filter.City {
			continue
		}
		if filter.Visited != nil && visited[d.ID] != *filter.Visited {
			continue
		}

		var score float32
		if search != "" {
			if !strings.Contains(strings.ToLower(d.Name), search) &&
				!strings.Contains(strings.ToLower(d.Category), search) {
				continue
			}
			score = utils.CosineSimilarity(queryVec,
				utils.TextVector(d.Name+" "+d.Category+" "+d.Description))
		}

		results = append(results, scored{
			resp:  response_models.DestinationResponse{Destination: d, Visited: visited[d.ID]},
			score: score,
		})
	}

	if search != "" {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].score > results[j].score
		})
	}

	out := make([]response_models.DestinationResponse, 0, len(results))
	for _, r := range results {
		out = append(out, r.resp)
	}
	return out, nil
}

func (s *GuideService) Cities() []string {
	seen := make(map[string]bool)
	var cities []string
	for _, d := range guideCatalog {
		if !seen[d.City] {
			seen[d.City] = true
			cities = append(cities, d.City)
		}
	}
	return cities
}

func (s *GuideService) ToggleVisited(ctx context.Context, destinationID string) (bool, error) {
	known := false
	for _, d := range guideCatalog {
		if d.ID == destinationID {
			known = true
			break
		}
	}
	if !known {
		return false, utils.ErrNotFound
	}

	ids, err := s.visited.Load(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrStorageCorrupt) {
			log.Printf("guide: %v, continuing with empty visited set", err)
			ids = []string{}
		} else {
			return false, err
		}
	}

	kept := ids[:0:0]
	removed := false
	for _, id := range ids {
		if id == destinationID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	nowVisited := !removed
	if nowVisited {
		kept = append(kept, destinationID)
	}

	if err := s.visited.Persist(ctx, kept); err != nil {
		return false, err
	}
	return nowVisited, nil
}
