package dataset

import (
	"sort"

	"github.com/AlinaYaremko/lab-3-ad/internal/models"
	"github.com/AlinaYaremko/lab-3-ad/internal/regions"
)

// Query describes one filter request against a dataset. Year and week
// ranges are inclusive on both ends.
type Query struct {
	YearFrom int
	YearTo   int
	WeekFrom int
	WeekTo   int
	Region   string
	Sort     models.SortMode
	Param    models.Parameter
}

// Filter returns the records matching the query, optionally ordered by
// the chosen parameter. It is a pure function of (dataset, query): an
// unresolvable region name or an empty dataset yields an empty result,
// never an error. Sorting is stable, so ties keep their filter order.
func Filter(ds *models.Dataset, q Query) []models.Record {
	result := []models.Record{}
	if ds.Empty() {
		return result
	}

	regionID, ok := regions.IDByName(q.Region)
	if !ok {
		return result
	}

	for _, rec := range ds.Records {
		if rec.RegionID != regionID {
			continue
		}
		if rec.Year < q.YearFrom || rec.Year > q.YearTo {
			continue
		}
		if rec.Week < q.WeekFrom || rec.Week > q.WeekTo {
			continue
		}
		result = append(result, rec)
	}

	switch q.Sort {
	case models.SortAscending:
		sort.SliceStable(result, func(i, j int) bool {
			return q.Param.Value(result[i]) < q.Param.Value(result[j])
		})
	case models.SortDescending:
		sort.SliceStable(result, func(i, j int) bool {
			return q.Param.Value(result[i]) > q.Param.Value(result[j])
		})
	}

	return result
}

// YearlyAverage groups a region's records by year over the inclusive
// year range and returns the per-year arithmetic mean of the chosen
// parameter, ordered by year. Weeks are not restricted here: the
// comparison view averages whole years.
func YearlyAverage(ds *models.Dataset, region string, yearFrom, yearTo int, param models.Parameter) []models.YearMean {
	result := []models.YearMean{}
	if ds.Empty() {
		return result
	}

	regionID, ok := regions.IDByName(region)
	if !ok {
		return result
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, rec := range ds.Records {
		if rec.RegionID != regionID || rec.Year < yearFrom || rec.Year > yearTo {
			continue
		}
		sums[rec.Year] += param.Value(rec)
		counts[rec.Year]++
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		result = append(result, models.YearMean{
			Year: year,
			Mean: sums[year] / float64(counts[year]),
		})
	}

	return result
}
