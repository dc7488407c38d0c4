package params_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/params"
)

func ExampleStore() {
	store, err := params.NewStore(
		params.Float("gain", "Gain", params.Linear(-24, 24, 0.5), 0, "dB"),
		params.Bool("bypass", "Bypass", false),
	)
	if err != nil {
		panic(err)
	}

	sub := store.Subscribe(8)
	defer sub.Close()

	_ = store.Set("gain", 6.1)
	_ = store.Set("bypass", 1)

	n, changed := sub.Drain()
	fmt.Println(store.Value("gain"), store.Bool("bypass"), store.Version())
	fmt.Println(n, changed)
	// Output:
	// 6 true 2
	// 2 true
}
