package alias

// DefaultTable returns the built-in alias table for the current product
// range: color × volume tumbler variants, named sets, and seasonal editions.
// Keys are matched against manifest tokens after whitespace has been
// stripped, which is why the spaceless English spellings appear alongside
// the spaced ones.
func DefaultTable() Table {
	return Table{
		// 20oz blue
		"20oz蓝": "蓝底 20oz", "蓝20oz": "蓝底 20oz", "蓝底20oz": "蓝底 20oz",
		// 40oz blue
		"40oz蓝": "蓝底 40oz", "蓝40oz": "蓝底 40oz", "蓝底40oz": "蓝底 40oz", "40蓝": "蓝底 40oz",
		// 30oz blue
		"30oz蓝": "蓝底 30oz", "蓝30oz": "蓝底 30oz", "蓝底30oz": "蓝底 30oz",
		// 20oz white
		"20oz白": "白底 20oz", "白20oz": "白底 20oz", "白底20oz": "白底 20oz",
		// 30oz white
		"30oz白": "白底 30oz", "白30oz": "白底 30oz", "白底30oz": "白底 30oz",
		// 40oz white
		"40oz白": "白底 40oz", "白40oz": "白底 40oz", "白底40oz": "白底 40oz", "40白": "白底 40oz",
		// 20oz pink
		"20oz粉": "粉底 20oz", "粉20oz": "粉底 20oz", "粉底20oz": "粉底 20oz",
		// 40oz pink
		"40oz粉": "粉底 40oz", "粉40oz": "粉底 40oz", "粉底40oz": "粉底 40oz", "40粉": "粉底 40oz",
		// Slim bottle ("Slim" must not shadow "SlimBottle"; longest-first
		// ordering in the resolver guarantees that)
		"SlimBottle": "Slim Bottle", "Slim": "Slim Bottle",
		// Gift box
		"礼盒": "礼盒",
		// Named sets
		"HolidayReserveAllDayWineSet":   "Holiday Reserve All Day Wine Set",
		"TheReserveWineTumblerSet|11oz": "The Reserve Wine Tumbler Set | 11 oz",
		"Everyday Camp Mug Set":         "Everyday Camp Mug Set", "EverydayCampMugSet": "Everyday Camp Mug Set",
		"Holiday The Quencher Details ProTour Tumbler Set": "Holiday The Quencher Details ProTour Tumbler Set",
		"HolidayTheQuencherDetailsProTourTumblerSet":       "Holiday The Quencher Details ProTour Tumbler Set",
		"Coquette Bow Chantilly 20oz":                      "Coquette Bow Chantilly 20oz",
		"CoquetteBowChantilly20oz":                         "Coquette Bow Chantilly 20oz",
		// Seasonal editions
		"情人节款20oz": "情人节款20oz", "情人节款30oz": "情人节款30oz", "情人节款40oz": "情人节款40oz",
		"情人节款红色20oz": "情人节款红色20oz", "情人节款红色30oz": "情人节款红色30oz", "情人节款红色40oz": "情人节款红色40oz",
	}
}
