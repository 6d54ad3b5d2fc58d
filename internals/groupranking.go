package internals

import (
	"math"

	"greencommute-server/model"
)

// MinTripDaysForGroup is how many distinct days a member must have logged
// trips on to count toward their group's size.
const MinTripDaysForGroup = 5

// LargestGroups ranks groups descending by the number of members who logged
// trips on at least MinTripDaysForGroup distinct days.
func (results *Results) LargestGroups() ([]model.GroupStats, error) {
	return results.largestGroups("")
}

// LargestGroupsFor is LargestGroups scoped to one community.
func (results *Results) LargestGroupsFor(communityName string) ([]model.GroupStats, error) {
	return results.largestGroups(communityName)
}

func (results *Results) largestGroups(communityName string) ([]model.GroupStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	groups := []model.GroupStats{}
	byGroup := make(map[int]int) // group id -> index into groups
	for _, record := range records {
		user := record.User
		if user.GroupID == 0 {
			continue
		}
		if communityName != "" && record.CommunityName != communityName {
			continue
		}
		if tripDays(user.Trips) < MinTripDaysForGroup {
			continue
		}

		index, ok := byGroup[user.GroupID]
		if !ok {
			index = len(groups)
			byGroup[user.GroupID] = index
			groups = append(groups, model.GroupStats{
				GroupName:     user.Group.Name,
				CommunityName: record.CommunityName,
			})
		}
		groups[index].Members++
	}

	sortDescending(groups, func(group model.GroupStats) float64 {
		return float64(group.Members)
	})
	return groups, nil
}

// GreenestGroupsOfType ranks groups ascending by CO2 emitted per mile over
// their members' trips to the named destination. Groups with no mileage to
// that destination rank last.
func (results *Results) GreenestGroupsOfType(destinationName string) ([]model.GroupStats, error) {
	records, err := results.UserResults()
	if err != nil {
		return nil, err
	}

	type groupTotals struct {
		emitted float64
		miles   float64
	}
	groups := []model.GroupStats{}
	totals := []groupTotals{}
	byGroup := make(map[int]int)
	for _, record := range records {
		user := record.User
		if user.GroupID == 0 {
			continue
		}

		index, ok := byGroup[user.GroupID]
		if !ok {
			index = len(groups)
			byGroup[user.GroupID] = index
			groups = append(groups, model.GroupStats{
				GroupName:     user.Group.Name,
				CommunityName: record.CommunityName,
			})
			totals = append(totals, groupTotals{})
		}
		groups[index].Members++

		for _, trip := range user.Trips {
			if trip.Destination.Name != destinationName {
				continue
			}
			totals[index].emitted += results.emissions[trip.Mode.Name] * trip.Distance
			totals[index].miles += trip.Distance
		}
	}

	type rankedGroup struct {
		stats   model.GroupStats
		perMile float64
	}
	ranked := make([]rankedGroup, len(groups))
	for index := range groups {
		// 0/0 for a group with no trips to this destination; NaN sorts last
		ranked[index] = rankedGroup{
			stats:   groups[index],
			perMile: totals[index].emitted / totals[index].miles,
		}
	}

	sortAscending(ranked, func(group rankedGroup) float64 {
		return group.perMile
	})

	// NaN never survives to the output, json cannot encode it
	for index, group := range ranked {
		if !math.IsNaN(group.perMile) {
			group.stats.EmissionsPerMile = group.perMile
		}
		groups[index] = group.stats
	}
	return groups, nil
}

func tripDays(trips []model.Trip) int {
	days := make(map[string]bool)
	for _, trip := range trips {
		days[trip.Date.Format("2006-01-02")] = true
	}
	return len(days)
}
