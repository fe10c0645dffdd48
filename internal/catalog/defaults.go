package catalog

// Default returns the built-in scheduler parameter catalog. The entries
// mirror the knobs the common k-diffusion schedulers expose; schedulers
// without tunable sigmas declare no parameters and simply hide the whole
// block.
func Default() Catalog {
	return Catalog{
		"normal": {},
		"simple": {},
		"ddim_uniform": {},
		"sgm_uniform": {},
		"karras": {
			"steps":     {Kind: KindNumber, Default: 20, Min: 1, Max: 150, Step: 1},
			"sigma_max": {Kind: KindNumber, Default: 14.61, Min: 0.01, Max: 1000, Step: 0.01, Round: 0.01},
			"sigma_min": {Kind: KindNumber, Default: 0.03, Min: 0.001, Max: 10, Step: 0.001, Round: 0.001},
			"rho":       {Kind: KindNumber, Default: 7.0, Min: 0.1, Max: 20, Step: 0.1, Round: 0.1},
		},
		"exponential": {
			"steps":     {Kind: KindNumber, Default: 20, Min: 1, Max: 150, Step: 1},
			"sigma_max": {Kind: KindNumber, Default: 14.61, Min: 0.01, Max: 1000, Step: 0.01, Round: 0.01},
			"sigma_min": {Kind: KindNumber, Default: 0.03, Min: 0.001, Max: 10, Step: 0.001, Round: 0.001},
		},
		"polyexponential": {
			"steps":     {Kind: KindNumber, Default: 20, Min: 1, Max: 150, Step: 1},
			"sigma_max": {Kind: KindNumber, Default: 14.61, Min: 0.01, Max: 1000, Step: 0.01, Round: 0.01},
			"sigma_min": {Kind: KindNumber, Default: 0.03, Min: 0.001, Max: 10, Step: 0.001, Round: 0.001},
			"rho":       {Kind: KindNumber, Default: 1.0, Min: 0.1, Max: 20, Step: 0.1, Round: 0.1},
		},
		"vp": {
			"beta_d":   {Kind: KindNumber, Default: 19.9, Min: 0.1, Max: 100, Step: 0.1, Round: 0.1},
			"beta_min": {Kind: KindNumber, Default: 0.1, Min: 0.01, Max: 10, Step: 0.01, Round: 0.01},
			"eps_s":    {Kind: KindNumber, Default: 0.001, Min: 0.0001, Max: 1, Step: 0.0001, Round: 0.0001},
		},
		"laplace": {
			"mu":   {Kind: KindNumber, Default: 0.0, Min: -10, Max: 10, Step: 0.1, Round: 0.1},
			"beta": {Kind: KindNumber, Default: 0.5, Min: 0.01, Max: 10, Step: 0.01, Round: 0.01},
		},
	}
}
