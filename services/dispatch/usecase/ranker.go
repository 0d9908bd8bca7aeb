package usecase

import (
	"math"
	"sort"

	"github.com/hhtransportationtx/dispatch/internal/pkg/models"
	"github.com/hhtransportationtx/dispatch/internal/utils"
)

// RankCandidates scores the supplied driver snapshots against a trip's
// pickup position and returns them ordered most preferred first.
//
// Only active drivers are considered. The distance sub-score is
// max(0, 10 - miles/2) when both positions are known; otherwise the
// configured neutral default applies. The workload sub-score is
// 10 - activeTrips and is deliberately not clamped, so heavily loaded
// drivers sink below lightly loaded ones however far away. Exact score
// ties preserve the input ordering.
//
// An empty result means no active drivers exist; that is a valid
// no-candidates outcome, not an error.
func (uc *DispatchUC) RankCandidates(pickup *models.Location, drivers []models.DriverSnapshot) []models.Candidate {
	weights := uc.cfg.Dispatch

	candidates := make([]models.Candidate, 0, len(drivers))
	for _, driver := range drivers {
		if driver.Status != models.DriverStatusActive {
			continue
		}

		candidate := models.Candidate{
			Driver:        driver,
			DistanceMiles: -1,
			DistanceScore: weights.NeutralDistanceScore,
		}

		if pickup != nil && driver.Location != nil {
			miles, err := utils.DistanceMiles(
				utils.GeoPointFromLocation(*pickup),
				utils.GeoPointFromLocation(*driver.Location),
			)
			if err == nil {
				candidate.DistanceMiles = miles
				candidate.DistanceScore = math.Max(0, 10-miles/2)
			}
		}

		candidate.WorkloadScore = 10 - float64(driver.ActiveTrips)
		candidate.Score = weights.WorkloadWeight*candidate.WorkloadScore +
			weights.DistanceWeight*candidate.DistanceScore

		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
