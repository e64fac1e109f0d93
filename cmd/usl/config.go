package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/musicmrman99/treespec/materialize"
	"github.com/musicmrman99/treespec/render"
)

func palette() render.Palette {
	return render.Palette{
		materialize.Neutral:   viper.GetString("colors.neutral"),
		materialize.Inclusive: viper.GetString("colors.inclusive"),
		materialize.Exclusive: viper.GetString("colors.exclusive"),
	}
}

func idSource() (materialize.IDSource, error) {
	switch ids := viper.GetString("ids"); ids {
	case "", "counter":
		return materialize.NewCounter(), nil
	case "uuid":
		return materialize.NewUUIDSource(), nil
	default:
		return nil, fmt.Errorf("unknown id source %q (want counter or uuid)", ids)
	}
}

func dotOptions() render.DOTOptions {
	return render.DOTOptions{
		RankDir: viper.GetString("rankdir"),
		Palette: palette(),
	}
}
