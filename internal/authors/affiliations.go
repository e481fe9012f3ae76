// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import "github.com/Dexter626358/issuekit/pkg/types"

// ShareAffiliations copies organization data between authors that were
// marked with the same affiliation symbol in the byline. markers maps
// a symbol (e.g. "1", "a", "*") to the 1-based positions of the
// authors carrying it; the first author in each group with a non-empty
// OrgName donates it, per language, to the rest of the group. Authors
// that already have an organization are left alone.
func ShareAffiliations(authors []types.Author, markers map[string][]int) {
	for _, group := range markers {
		shareGroup(authors, group, func(ii *types.IndividByLang) *types.IndividInfo { return &ii.RUS })
		shareGroup(authors, group, func(ii *types.IndividByLang) *types.IndividInfo { return &ii.ENG })
	}
}

func shareGroup(authors []types.Author, group []int, pick func(*types.IndividByLang) *types.IndividInfo) {
	var donor *types.IndividInfo
	for _, pos := range group {
		if pos < 1 || pos > len(authors) {
			continue
		}
		info := pick(&authors[pos-1].IndividInfo)
		if info.OrgName != "" {
			donor = info
			break
		}
	}
	if donor == nil {
		return
	}
	for _, pos := range group {
		if pos < 1 || pos > len(authors) {
			continue
		}
		info := pick(&authors[pos-1].IndividInfo)
		if info.OrgName == "" {
			info.OrgName = donor.OrgName
			if info.Address == "" {
				info.Address = donor.Address
			}
		}
	}
}
