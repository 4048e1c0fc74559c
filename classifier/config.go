package classifier

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// OptionsFromConfig reads the extra places under the `classifier` key:
//
//	classifier:
//	  workplace_ids: [123, 456]
//	  workplace_names: ["office"]
//	  home_ids: [789]
//	  home_names: ["home"]
//	  ignore_manual: true
func OptionsFromConfig(v *viper.Viper) (Options, error) {
	workIDs, err := parseIDs(v.GetStringSlice("classifier.workplace_ids"))
	if err != nil {
		return Options{}, err
	}

	homeIDs, err := parseIDs(v.GetStringSlice("classifier.home_ids"))
	if err != nil {
		return Options{}, err
	}

	return Options{
		WorkplaceIDs:   workIDs,
		WorkplaceNames: v.GetStringSlice("classifier.workplace_names"),
		HomeIDs:        homeIDs,
		HomeNames:      v.GetStringSlice("classifier.home_names"),
		IgnoreManual:   v.GetBool("classifier.ignore_manual"),
	}, nil
}

func parseIDs(values []string) ([]int64, error) {
	ids := make([]int64, 0, len(values))
	for _, s := range values {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid place id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
