package reconcile

// DefaultImageTable returns the static per-product image fallback used when
// a product appears in a manifest but not in the live catalog. Paths are
// relative to the frontend's asset root.
func DefaultImageTable() map[string]string {
	return map[string]string{
		"压扁包装":                                 "img/s-l1600.png",
		"礼盒":                                   "img/Stanley 1913 x LoveShackFancy Holiday Quencher ProTour Ornament Set.png",
		"蓝底 20oz":                              "img/Stanley 1913 x LoveShackFancy Holiday Quencher® ProTour Flip Straw Tumbler 20 OZ.png",
		"蓝底 30oz":                              "img/Stanley 1913 x LoveShackFancy Holiday Quencher® ProTour Flip Straw Tumbler  30 OZ.png",
		"蓝底 40oz":                              "img/Stanley 1913 x LoveShackFancy Holiday Quencher® H2.0 FlowState™ Tumbler  40 OZ.png",
		"白底 20oz":                              "img/Stanley 1913 x LoveShackFancy Holiday Quencher® ProTour Flip Straw Tumbler 20OZ.png",
		"白底 40oz":                              "img/Stanley 1913 x LoveShackFancy Holiday Quencher® H2.0 FlowState™ Tumbler40 oz.png",
		"Slim Bottle":                          "img/Stanley 1913 x LoveShackFancy Holiday All Day Slim Bottle.png",
		"Holiday Reserve All Day Wine Set":     "img/Stanley 1913 x LoveShackFancy Holiday Reserve All Day Wine Set.png",
		"The Reserve Wine Tumbler Set | 11 oz": "img/The Reserve Wine Tumbler Set 11 OZ.png",
		"Everyday Camp Mug Set":                "img/Stanley 1913 x LoveShackFancy Holiday Everyday Camp Mug Set.png",
		"Holiday The Quencher Details ProTour Tumbler Set": "img/Holiday The Quencher Details ProTour Tumbler Set  2-pack.png",
		"粉底 40oz":                     "img/Stanley 1913 x LoveShackFancy Holiday Quencher® H2.0 FlowState™ Tumbler 40 OZ.png",
		"粉底 30oz":                     "img/Stanley 1913 x LoveShackFancy Holiday Quencher® H2.0 FlowState™ Tumbler 30 OZ.png",
		"粉底 20oz":                     "img/ProTour Flip Straw Tumbler oz 20.png",
		"Coquette Bow Chantilly 20oz": "img/ProTour Flip Straw Tumbler 20 OZ.png",
		"情人节款20oz":                    "img/The Valentine's Day Quencher H2.0 Flowstate Tumbler 20 OZ.png",
		"情人节款30oz":                    "img/The Valentine's Day Quencher H2.0 Flowstate Tumbler 30 OZ.png",
		"情人节款40oz":                    "img/The Valentine's Day Quencher H2.0 Flowstate Tumbler 40 OZ.png",
		"情人节款红色20oz":                  "img/The Valentine's Day Quencher H2.0 Flowstate Tumbler 20 OZ Red.png",
		"情人节款红色30oz":                  "img/The Valentine's Day Quencher H2.0 Flowstate Tumbler 30 OZ Red.png",
		"情人节款红色40oz":                  "img/The Valentine's Day Quencher H2.0 Flowstate Tumbler 40 OZ Red.png",
	}
}
