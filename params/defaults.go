// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

// Default parameter tables per cell subtype. Units: lengths and diameters
// in um, cm in uF/cm^2, Ra in ohm-cm, e in mV, tau in ms, gbar in S/cm^2
// unless the mechanism notes otherwise (km, ca in pS/um^2).

// L2PyrDefaults returns the complete default parameter table for the
// layer 2/3 pyramidal subtype.
func L2PyrDefaults() Params {
	return Params{
		// soma geometry
		"L2Pyr_soma_L":    22.1,
		"L2Pyr_soma_diam": 23.4,
		"L2Pyr_soma_cm":   0.6195,
		"L2Pyr_soma_Ra":   200.0,

		// dendrite geometry -- cm and Ra shared across all dendrites
		"L2Pyr_dend_cm": 0.6195,
		"L2Pyr_dend_Ra": 200.0,

		"L2Pyr_apicaltrunk_L":      59.5,
		"L2Pyr_apicaltrunk_diam":   4.25,
		"L2Pyr_apical1_L":          306.0,
		"L2Pyr_apical1_diam":       4.08,
		"L2Pyr_apicaltuft_L":       238.0,
		"L2Pyr_apicaltuft_diam":    3.4,
		"L2Pyr_apicaloblique_L":    340.0,
		"L2Pyr_apicaloblique_diam": 3.91,
		"L2Pyr_basal1_L":           85.0,
		"L2Pyr_basal1_diam":        4.25,
		"L2Pyr_basal2_L":           255.0,
		"L2Pyr_basal2_diam":        2.72,
		"L2Pyr_basal3_L":           255.0,
		"L2Pyr_basal3_diam":        2.72,

		// synapse kinetics
		"L2Pyr_ampa_e":     0.0,
		"L2Pyr_ampa_tau1":  0.5,
		"L2Pyr_ampa_tau2":  5.0,
		"L2Pyr_nmda_e":     0.0,
		"L2Pyr_nmda_tau1":  1.0,
		"L2Pyr_nmda_tau2":  20.0,
		"L2Pyr_gabaa_e":    -80.0,
		"L2Pyr_gabaa_tau1": 0.5,
		"L2Pyr_gabaa_tau2": 5.0,
		"L2Pyr_gabab_e":    -80.0,
		"L2Pyr_gabab_tau1": 1.0,
		"L2Pyr_gabab_tau2": 20.0,

		// soma biophysics
		"L2Pyr_soma_gkbar_hh2":  0.01,
		"L2Pyr_soma_gnabar_hh2": 0.18,
		"L2Pyr_soma_el_hh2":     -65.0,
		"L2Pyr_soma_gl_hh2":     4.26e-5,
		"L2Pyr_soma_gbar_km":    250.0,

		// dendrite biophysics
		"L2Pyr_dend_gkbar_hh2":  0.01,
		"L2Pyr_dend_gnabar_hh2": 0.15,
		"L2Pyr_dend_el_hh2":     -65.0,
		"L2Pyr_dend_gl_hh2":     4.26e-5,
		"L2Pyr_dend_gbar_km":    250.0,
	}
}

// L5PyrDefaults returns the complete default parameter table for the
// layer 5 pyramidal subtype.
func L5PyrDefaults() Params {
	return Params{
		// soma geometry
		"L5Pyr_soma_L":    39.0,
		"L5Pyr_soma_diam": 28.9,
		"L5Pyr_soma_cm":   0.85,
		"L5Pyr_soma_Ra":   200.0,

		// dendrite geometry
		"L5Pyr_dend_cm": 0.85,
		"L5Pyr_dend_Ra": 200.0,

		"L5Pyr_apicaltrunk_L":      102.0,
		"L5Pyr_apicaltrunk_diam":   10.2,
		"L5Pyr_apical1_L":          680.0,
		"L5Pyr_apical1_diam":       7.48,
		"L5Pyr_apical2_L":          680.0,
		"L5Pyr_apical2_diam":       4.93,
		"L5Pyr_apicaltuft_L":       425.0,
		"L5Pyr_apicaltuft_diam":    3.4,
		"L5Pyr_apicaloblique_L":    255.0,
		"L5Pyr_apicaloblique_diam": 5.1,
		"L5Pyr_basal1_L":           85.0,
		"L5Pyr_basal1_diam":        6.8,
		"L5Pyr_basal2_L":           255.0,
		"L5Pyr_basal2_diam":        8.5,
		"L5Pyr_basal3_L":           255.0,
		"L5Pyr_basal3_diam":        8.5,

		// synapse kinetics
		"L5Pyr_ampa_e":     0.0,
		"L5Pyr_ampa_tau1":  0.5,
		"L5Pyr_ampa_tau2":  5.0,
		"L5Pyr_nmda_e":     0.0,
		"L5Pyr_nmda_tau1":  1.0,
		"L5Pyr_nmda_tau2":  20.0,
		"L5Pyr_gabaa_e":    -80.0,
		"L5Pyr_gabaa_tau1": 0.5,
		"L5Pyr_gabaa_tau2": 5.0,
		"L5Pyr_gabab_e":    -80.0,
		"L5Pyr_gabab_tau1": 1.0,
		"L5Pyr_gabab_tau2": 20.0,

		// soma biophysics
		"L5Pyr_soma_gkbar_hh2":  0.01,
		"L5Pyr_soma_gnabar_hh2": 0.16,
		"L5Pyr_soma_el_hh2":     -65.0,
		"L5Pyr_soma_gl_hh2":     4.26e-5,
		"L5Pyr_soma_gbar_ca":    60.0,
		"L5Pyr_soma_taur_cad":   20.0,
		"L5Pyr_soma_gbar_kca":   2e-4,
		"L5Pyr_soma_gbar_km":    200.0,
		"L5Pyr_soma_gbar_cat":   2e-4,
		"L5Pyr_soma_gbar_ar":    1e-6,

		// dendrite biophysics -- gbar_ar here is only the somatic base;
		// the dendritic ar density follows the path-distance gradient
		"L5Pyr_dend_gkbar_hh2":  0.01,
		"L5Pyr_dend_gnabar_hh2": 0.14,
		"L5Pyr_dend_el_hh2":     -71.0,
		"L5Pyr_dend_gl_hh2":     4.26e-5,
		"L5Pyr_dend_gbar_ca":    60.0,
		"L5Pyr_dend_taur_cad":   20.0,
		"L5Pyr_dend_gbar_kca":   2e-4,
		"L5Pyr_dend_gbar_km":    200.0,
		"L5Pyr_dend_gbar_cat":   2e-4,

		// synaptic conductances onto this subtype are configured on the
		// network wiring tables, not here
	}
}

// L2BasketDefaults returns the default parameter table for the layer 2/3
// basket (inhibitory) subtype -- a single somatic compartment.
func L2BasketDefaults() Params {
	return basketDefaults("L2Basket")
}

// L5BasketDefaults returns the default parameter table for the layer 5
// basket (inhibitory) subtype.
func L5BasketDefaults() Params {
	return basketDefaults("L5Basket")
}

func basketDefaults(name string) Params {
	return Params{
		name + "_soma_L":    39.0,
		name + "_soma_diam": 20.0,
		name + "_soma_cm":   0.85,
		name + "_soma_Ra":   200.0,

		// standard hh2 densities for fast-spiking interneurons
		name + "_soma_gkbar_hh2":  0.036,
		name + "_soma_gnabar_hh2": 0.12,
		name + "_soma_el_hh2":     -54.3,
		name + "_soma_gl_hh2":     3e-4,

		name + "_ampa_e":     0.0,
		name + "_ampa_tau1":  0.5,
		name + "_ampa_tau2":  5.0,
		name + "_nmda_e":     0.0,
		name + "_nmda_tau1":  1.0,
		name + "_nmda_tau2":  20.0,
		name + "_gabaa_e":    -80.0,
		name + "_gabaa_tau1": 0.5,
		name + "_gabaa_tau2": 5.0,
	}
}
