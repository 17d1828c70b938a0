package orca

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
)

// Conditions shared by several switches.
var (
	qmTheory = schema.In("theory", "HF", "DFT", "MP2", "CCSD")
	optTask  = schema.Has("task", "Opt")
	tddft    = schema.ShowIf(
		schema.On("excited states"),
		schema.Is("excited states:method", "TD-DFT"),
	)
)

// Fields returns the questionnaire catalog: every question the form asks,
// in presentation order. The returned slice is fresh on each call and is
// meant to be passed to schema.New, possibly after a schema.Merge with an
// overlay.
func Fields() []schema.Field {
	return []schema.Field{
		{
			Name:   "short description",
			Help:   "A one-line description for your calculation.",
			Kind:   schema.KindString,
			Widget: schema.WidgetEntry,
		},
		{
			Name:  "task",
			Group: "basic information",
			Help:  "The main task of your calculation.",
			Domain: schema.Map(
				schema.To("Energy", "Energy"),
				schema.To("Opt", "Opt"),
				schema.To("Freq", "Freq"),
				schema.To("Opt+Freq", "Opt Freq"),
				schema.To("OptTS", "OptTS"),
				schema.To("OptTS+Freq", "OptTS Freq"),
				schema.To("IRC", "IRC"),
				schema.To("OptTS+Freq+IRC", "OptTS Freq IRC"),
				schema.To("NEB", "NEB"),
				schema.To("NEB+Freq", "NEB Freq"),
				schema.To("NEB+Freq+IRC", "NEB Freq IRC"),
			),
			Default: cty.StringVal("Opt+Freq"),
		},
		{
			Name:    "charge",
			Group:   "basic information",
			Text:    "Total charge",
			Help:    "Net charge of your calculation.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.IntRange(-100, 100, 1),
			Default: cty.NumberIntVal(0),
		},
		{
			Name:   "spin",
			Group:  "basic information",
			Text:   "Spin multiplicity",
			Help:   "Spin multiplicity of your calculation.",
			Widget: schema.WidgetSpin,
			Domain: schema.IntRange(1, 100, 1),
			Switch: schema.ShowIf(schema.On("unrestricted")),
		},
		{
			Name:    "unrestricted",
			Group:   "basic information",
			Text:    "Unrestricted calculation",
			Help:    "Whether an unrestricted wavefunction should be used.",
			Default: cty.False,
		},
		{
			Name: "uco",
			Text: "Corresponding orbitals",
			Help: "Whether unrestricted corresponding orbitals should be calculated.",
			Domain: schema.Map(
				schema.ToBool(false, cty.NullVal(cty.String)),
				schema.ToBool(true, cty.StringVal("UCO")),
			),
			Switch: schema.ShowIf(schema.On("unrestricted")),
		},
		{
			Name:    "theory",
			Group:   "level of theory",
			Help:    "Class of calculation.",
			Domain:  schema.Labels("MM", "HF", "DFTB", "DFT", "MP2", "CCSD"),
			Default: cty.StringVal("DFT"),
		},
		{
			Name:  "frozen core",
			Group: "level of theory",
			Help:  "Whether the frozen core approximation should be used.",
			Domain: schema.Map(
				schema.ToBool(true, cty.NullVal(cty.String)),
				schema.ToBool(false, cty.StringVal("NoFrozenCore")),
			),
			Switch: schema.ShowIf(schema.In("theory", "MP2", "CCSD")),
		},
		{
			Name:    "triples correction",
			Group:   "level of theory",
			Help:    "Whether the perturbative triples correction should be calculated.",
			Default: cty.True,
			Switch:  schema.ShowIf(schema.Is("theory", "CCSD")),
		},
		{
			Name:  "dftb:hamiltonian",
			Group: "level of theory",
			Text:  "DFTB Hamiltonian",
			Help:  "Which model Hamiltonian should be used.",
			Domain: schema.Map(
				schema.To("GFN1-xTB", "XTB1"),
				schema.To("GFN2-xTB", "XTB2"),
			),
			Default: cty.StringVal("GFN2-xTB"),
			Switch:  schema.ShowIf(schema.Is("theory", "DFTB")),
		},
		{
			Name:  "dft:family",
			Group: "level of theory",
			Text:  "Density functional family",
			Help:  "Which density functional family should be used.",
			Domain: schema.Map(
				schema.To("LDA", "lda"),
				schema.To("GGA", "gga"),
				schema.To("meta-GGA", "meta-gga"),
				schema.To("Hybrid", "hybrid"),
				schema.To("RS-Hybrid", "rs-hybrid"),
				schema.To("meta-Hybrid", "meta-hybrid"),
				schema.To("Double-Hybrid", "double-hybrid"),
				schema.To("RS-Double-Hybrid", "rs-double-hybrid"),
			),
			Default: cty.StringVal("GGA"),
			Switch:  schema.ShowIf(schema.Is("theory", "DFT")),
		},
		{
			Name:    "dft:lda",
			Group:   "level of theory",
			Text:    "Density functional",
			Help:    "Which density functional should be used.",
			Domain:  schema.Labels("HFS", "VWN5", "VWN3", "PWLDA"),
			Default: cty.StringVal("VWN5"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "LDA"),
			),
		},
		{
			Name:  "dft:gga",
			Group: "level of theory",
			Text:  "Density functional",
			Help:  "Which density functional should be used.",
			Domain: schema.Labels(
				"BP86", "BLYP", "OLYP", "GLYP", "XLYP", "PW91",
				"mPWPW", "mPWLYP", "PBE", "rPBE", "revPBE", "PWP",
			),
			Default: cty.StringVal("BLYP"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "GGA"),
			),
		},
		{
			Name:  "dft:hybrid",
			Group: "level of theory",
			Text:  "Density functional",
			Help:  "Which density functional should be used.",
			Domain: schema.Labels(
				"B1LYP", "B3LYP", "B3LYP/G", "O3LYP", "X3LYP",
				"B1P", "B3P", "B3PW", "PW1PW", "mPW1PW", "mPW1LYP",
				"PBE0", "PW6B95", "BHandHLYP",
			),
			Default: cty.StringVal("B3LYP"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "Hybrid"),
			),
		},
		{
			Name:  "dft:meta-gga",
			Group: "level of theory",
			Text:  "Density functional",
			Help:  "Which density functional should be used.",
			Domain: schema.Labels(
				"TPSS", "M06L", "B97M-V", "B97M-D3BJ", "SCANfunc",
			),
			Default: cty.StringVal("SCANfunc"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "meta-GGA"),
			),
		},
		{
			Name:    "dft:meta-hybrid",
			Group:   "level of theory",
			Text:    "Density functional",
			Help:    "Which density functional should be used.",
			Domain:  schema.Labels("TPSSh", "TPSS0", "M06", "M062X"),
			Default: cty.StringVal("TPSSh"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "meta-Hybrid"),
			),
		},
		{
			Name:  "dft:rs-hybrid",
			Group: "level of theory",
			Text:  "Density functional",
			Help:  "Which density functional should be used.",
			Domain: schema.Labels(
				"wB97", "wB97X", "wB97X-D3", "wB97X-V", "wB97X-D3BJ",
				"wB97M-V", "wB97M-D3BJ", "CAM-B3LYP", "LC-BLYP",
			),
			Default: cty.StringVal("wB97X"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "RS-Hybrid"),
			),
		},
		{
			Name:  "dft:double-hybrid",
			Group: "level of theory",
			Text:  "Density functional",
			Help:  "Which density functional should be used.",
			Domain: schema.Labels(
				"B2PLYP", "B2PLYP-D", "B2PLYP-D3", "mPW2PLYP",
				"mPW2PLYP-D", "B2GP-PLYP", "B2K-PLYP", "B2T-PLYP",
				"PWPB95", "DSD-BLYP", "DSD-PBEP86", "DSD-PBEB95",
			),
			Default: cty.StringVal("B2PLYP"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "Double-Hybrid"),
			),
		},
		{
			Name:   "dft:rs-double-hybrid",
			Group:  "level of theory",
			Text:   "Density functional",
			Help:   "Which density functional should be used.",
			Domain: schema.Labels("wB2PLYP", "wB2GP-PLYP"),
			Switch: schema.ShowIf(
				schema.Is("theory", "DFT"),
				schema.Is("dft:family", "RS-Double-Hybrid"),
			),
		},
		{
			Name:    "dispersion",
			Group:   "level of theory",
			Text:    "Dispersion correction",
			Help:    "Which atomic pairwise dispersion correction should be used.",
			Domain:  schema.Labels(schema.NoneLabel, "D2", "D3Zero", "D3BJ", "D4"),
			Default: cty.StringVal("D4"),
			Switch:  schema.ShowIf(schema.Is("theory", "DFT")),
		},
		{
			Name:  "basis:family",
			Group: "level of theory",
			Text:  "Basis set family",
			Help:  "Which basis set family should be employed.",
			Domain: schema.Map(
				schema.To("def2", "def2"),
				schema.To("cc", "cc"),
				schema.To("Pople", "pople"),
			),
			Switch: schema.ShowIf(qmTheory),
		},
		{
			Name:  "basis:def2",
			Group: "level of theory",
			Text:  "Basis set quality",
			Help:  "Which basis set should be used.",
			Domain: schema.Map(
				schema.To("DZ(P)", "def2-SV(P)"),
				schema.To("DZ(P)D", "ma-def2-SV(P)"),
				schema.To("DZP", "def2-SVP"),
				schema.To("DZPD", "ma-def2-SVP"),
				schema.To("TZP(-f)", "def2-TZVP(-f)"),
				schema.To("TZP(-f)D", "ma-def2-TZVP(-f)"),
				schema.To("TZP", "def2-TZVP"),
				schema.To("TZPD", "ma-def2-TZVP"),
				schema.To("TZPP", "def2-TZVPP"),
				schema.To("TZPPD", "ma-def2-TZVPP"),
				schema.To("QZP", "def2-QZVP"),
				schema.To("QZPP", "def2-QZVPP"),
				schema.To("QZPPD", "ma-def2-QZVPP"),
			),
			Default: cty.StringVal("TZP"),
			Switch:  schema.ShowIf(schema.Is("basis:family", "def2"), qmTheory),
		},
		{
			Name:  "basis:cc",
			Group: "level of theory",
			Text:  "Basis set quality",
			Help:  "Which basis set should be used.",
			Domain: schema.Map(
				schema.To("DZP", "cc-pVDZ"),
				schema.To("DZPD", "aug-cc-pVDZ"),
				schema.To("TZP", "cc-pVTZ"),
				schema.To("TZPD", "aug-cc-pVTZ"),
				schema.To("QZP", "cc-pVQZ"),
				schema.To("QZPD", "aug-cc-pVQZ"),
				schema.To("5ZP", "cc-pV5Z"),
				schema.To("5ZPD", "aug-cc-pV5Z"),
				schema.To("6ZP", "cc-pV6Z"),
				schema.To("6ZPD", "aug-cc-pV6Z"),
			),
			Default: cty.StringVal("TZP"),
			Switch:  schema.ShowIf(schema.Is("basis:family", "cc"), qmTheory),
		},
		{
			Name:  "basis:pople",
			Group: "level of theory",
			Text:  "Basis set quality",
			Help:  "Which basis set should be used.",
			Domain: schema.Map(
				schema.To("DZ", "6-31G"),
				schema.To("DZ(P)", "6-31G(d)"),
				schema.To("DZP", "6-31G(d,p)"),
				schema.To("DZP(D)", "6-31+G(d,p)"),
				schema.To("DZPD", "6-31++G(d,p)"),
				schema.To("TZ", "6-311G"),
				schema.To("TZ(P)", "6-311G(2df)"),
				schema.To("TZP", "6-311G(2df,2pd)"),
				schema.To("TZP(D)", "6-311+G(2df,2pd)"),
				schema.To("TZPD", "6-311++G(2df,2pd)"),
			),
			Default: cty.StringVal("TZP"),
			Switch:  schema.ShowIf(schema.Is("basis:family", "Pople"), qmTheory),
		},
		{
			Name: "numerical:quality",
			Text: "Numerical quality",
			Help: "Which numerical quality is desired. Good is defined as " +
				"enough to avoid imaginary frequencies due to numerical " +
				"noise, but you might need more than that.",
			Domain: schema.Map(
				schema.ToInt("Poor", -1),
				schema.ToInt("Fair", 0),
				schema.ToInt("Good", 1),
				schema.ToInt("Very Good", 2),
				schema.ToInt("Excellent", 3),
				schema.ToInt("Extreme", 4),
			),
			Default: cty.StringVal("Good"),
			Switch:  schema.ShowIf(qmTheory),
		},
		{
			Name:    "dlpno",
			Group:   "acceleration",
			Text:    "DLPNO",
			Help:    "Whether the domain-based local pair natural orbital approximation should be used.",
			Default: cty.True,
			Switch: schema.Any(
				schema.All(schema.In("theory", "MP2", "CCSD")),
				schema.All(
					schema.Is("theory", "DFT"),
					schema.Has("dft:family", "Double-Hybrid"),
				),
			),
		},
		{
			Name:    "ri",
			Group:   "acceleration",
			Text:    "Resolution of identity",
			Help:    "Whether the resolution of identity approximation should be used.",
			Default: cty.True,
			Switch: schema.Any(
				schema.All(schema.Is("theory", "HF")),
				schema.All(
					schema.In("theory", "MP2", "CCSD"),
					schema.Off("dlpno"),
				),
				schema.All(
					schema.Is("theory", "DFT"),
					schema.Has("dft:family", "GGA"),
				),
				schema.All(
					schema.Is("theory", "DFT"),
					schema.Has("dft:family", "Hybrid"),
				),
			),
		},
		{
			Name:  "ri:hf",
			Group: "acceleration",
			Text:  "Resolution of identity",
			Help:  "Which resolution of identity approximation should be used.",
			Domain: schema.Map(
				schema.To("RIJONX", "RIJONX"),
				schema.To("RIJK", "RIJK"),
				schema.To("RIJCOSX", "RIJCOSX"),
			),
			Default: cty.StringVal("RIJCOSX"),
			Switch: schema.Any(
				schema.All(schema.On("ri"), schema.In("theory", "HF", "MP2", "CCSD")),
				schema.All(
					schema.On("ri"),
					schema.Is("theory", "DFT"),
					schema.Has("dft:family", "Hybrid"),
				),
				schema.All(schema.On("dlpno"), schema.In("theory", "HF", "MP2", "CCSD")),
				schema.All(
					schema.On("dlpno"),
					schema.Is("theory", "DFT"),
					schema.Has("dft:family", "Hybrid"),
				),
			),
		},
		{
			Name:    "nprocs",
			Group:   "acceleration",
			Text:    "Number of processes",
			Help:    "Number of parallel processes to use.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.Ints(1, 2, 4, 8, 16, 32),
			Default: cty.NumberIntVal(6),
		},
		{
			Name:    "memory",
			Group:   "acceleration",
			Text:    "Total memory",
			Help:    "How much memory to use in total.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.IntRange(6000, 18000, 500),
			Default: cty.NumberIntVal(12000),
		},
		{
			Name:    "solvation",
			Help:    "Whether implicit solvation should be used.",
			Default: cty.True,
		},
		{
			Name:    "solvation:model",
			Text:    "Solvation model",
			Help:    "Which solvent model should be used.",
			Domain:  schema.Labels("CPCM", "SMD"),
			Default: cty.StringVal("SMD"),
			Switch: schema.ShowIf(
				schema.On("solvation"),
				schema.Isnt("theory", "DFTB"),
			),
		},
		{
			Name: "solvation:cpcm",
			Text: "Solvent",
			Help: "Which solvent should be considered.",
			Domain: schema.Map(
				schema.To("Water", "Water"),
				schema.To("Dimethyl sulfoxide", "DMSO"),
				schema.To("Dimethylformamide", "DMF"),
				schema.To("Acetonitrile", "Acetonitrile"),
				schema.To("Methanol", "Methanol"),
				schema.To("Ethanol", "Ethanol"),
				schema.To("Ammonia", "Ammonia"),
				schema.To("Acetone", "Acetone"),
				schema.To("Pyridine", "Pyridine"),
				schema.To("1-Octanol", "Octanol"),
				schema.To("Dichloromethane", "CH2Cl2"),
				schema.To("Tetrahydrofuran", "THF"),
				schema.To("Chloroform", "Chloroform"),
				schema.To("Toluene", "Toluene"),
				schema.To("Benzene", "Benzene"),
				schema.To("Tetrachloromethane", "CCl4"),
				schema.To("Cyclohexane", "Cyclohexane"),
				schema.To("n-Hexane", "Hexane"),
			),
			Default: cty.StringVal("Water"),
			Switch: schema.ShowIf(
				schema.On("solvation"),
				schema.Isnt("theory", "DFTB"),
				schema.Is("solvation:model", "CPCM"),
			),
		},
		{
			Name: "solvation:smd",
			Text: "Solvent",
			Help: "Which solvent should be considered.",
			Domain: schema.Map(
				schema.To("Water", "Water"),
				schema.To("Dimethyl sulfoxide", "DMSO"),
				schema.To("Dimethylformamide", "DMF"),
				schema.To("Acetonitrile", "Acetonitrile"),
				schema.To("Nitromethane", "Nitromethane"),
				schema.To("Nitrobenzene", "Nitrobenzene"),
				schema.To("Methanol", "Methanol"),
				schema.To("Ethanol", "Ethanol"),
				schema.To("Acetone", "Acetone"),
				schema.To("Pyridine", "Pyridine"),
				schema.To("1-Octanol", "1-Octanol"),
				schema.To("Dichloromethane", "Dichloromethane"),
				schema.To("Tetrahydrofuran", "THF"),
				schema.To("Chloroform", "Chloroform"),
				schema.To("Diethyl ether", "Diethyl ether"),
				schema.To("Carbon disulfide", "Carbon disulfide"),
				schema.To("Toluene", "Toluene"),
				schema.To("Benzene", "Benzene"),
				schema.To("Tetrachloromethane", "CCl4"),
				schema.To("Cyclohexane", "Cyclohexane"),
				schema.To("n-Hexane", "n-Hexane"),
			),
			Default: cty.StringVal("Water"),
			Switch: schema.ShowIf(
				schema.On("solvation"),
				schema.Isnt("theory", "DFTB"),
				schema.Is("solvation:model", "SMD"),
			),
		},
		{
			Name: "solvation:gbsa",
			Text: "Solvent",
			Help: "Which solvent should be considered.",
			Domain: schema.Map(
				schema.To("Water", "Water"),
				schema.To("Dimethyl sulfoxide", "DMSO"),
				schema.To("Dimethylformamide", "DMF"),
				schema.To("Acetonitrile", "Acetonitrile"),
				schema.To("Methanol", "Methanol"),
				schema.To("Acetone", "Acetone"),
				schema.To("Dichloromethane", "CH2Cl2"),
				schema.To("Tetrahydrofuran", "THF"),
				schema.To("Chloroform", "CHCl3"),
				schema.To("Diethyl ether", "Ether"),
				schema.To("Carbon disulfide", "CS2"),
				schema.To("Toluene", "Toluene"),
				schema.To("Benzene", "Benzene"),
				schema.To("n-Hexane", "n-Hexan"),
			),
			Default: cty.StringVal("Water"),
			Switch: schema.ShowIf(
				schema.On("solvation"),
				schema.Is("theory", "DFTB"),
			),
		},
		{
			Name:    "relativity",
			Text:    "Scalar relativistic approximation",
			Help:    "Which scalar relativistic approximation should be used.",
			Domain:  schema.Labels(schema.NoneLabel, "DKH", "ZORA"),
			Default: cty.StringVal(schema.NoneLabel),
			Switch:  schema.ShowIf(qmTheory),
		},
		{
			Name:    "spin-orbit coupling",
			Help:    "Whether spin-orbit coupling should be taken into account.",
			Default: cty.False,
			Switch:  schema.ShowIf(schema.Isnt("theory", "DFTB")),
		},
		{
			Name:    "ecp",
			Text:    "Effective core potentials",
			Help:    "Whether effective core potentials should be used. NOT IMPLEMENTED.",
			Domain:  schema.Labels(schema.NoneLabel, "def2-ECP"),
			Default: cty.StringVal("def2-ECP"),
			Switch:  schema.ShowIf(qmTheory),
		},
		{
			Name:    "excited states",
			Tab:     "properties",
			Text:    "Excited states calculation",
			Help:    "Whether excited states should be calculated.",
			Default: cty.False,
		},
		{
			Name:    "shielding-h",
			Tab:     "properties",
			Group:   "nuclear magnetic resonance",
			Text:    "Shielding for all H atoms",
			Help:    "Whether shielding for hydrogens should be calculated.",
			Default: cty.True,
		},
		{
			Name:    "shielding-c",
			Tab:     "properties",
			Group:   "nuclear magnetic resonance",
			Text:    "Shielding for all C atoms",
			Help:    "Whether shielding for carbons should be calculated.",
			Default: cty.False,
		},
		{
			Name:    "shielding-p",
			Tab:     "properties",
			Group:   "nuclear magnetic resonance",
			Text:    "Shielding for all P atoms",
			Help:    "Whether shielding for phosphorus should be calculated.",
			Default: cty.False,
		},
		{
			Name:    "coupling-h",
			Tab:     "properties",
			Group:   "nuclear magnetic resonance",
			Text:    "Spin-spin coupling for all H atoms",
			Help:    "Whether spin-spin coupling for hydrogens should be calculated.",
			Default: cty.False,
		},
		{
			Name:    "coupling-c",
			Tab:     "properties",
			Group:   "nuclear magnetic resonance",
			Text:    "Spin-spin coupling for all C atoms",
			Help:    "Whether spin-spin coupling for carbons should be calculated.",
			Default: cty.False,
		},
		{
			Name:    "coupling-p",
			Tab:     "properties",
			Group:   "nuclear magnetic resonance",
			Text:    "Spin-spin coupling for all P atoms",
			Help:    "Whether spin-spin coupling for phosphorus should be calculated.",
			Default: cty.False,
		},
		{
			Name:    "nbo",
			Tab:     "properties",
			Text:    "Perform NBO analysis",
			Help:    "Whether the natural bond orbital analysis should be performed.",
			Default: cty.False,
		},
		{
			Name:   "scf:maxiter",
			Tab:    "details",
			Group:  "self consistent field",
			Text:   "Maximum number of iterations",
			Help:   "Maximum number of self consistent field iterations.",
			Widget: schema.WidgetSpin,
			Domain: schema.Labels(
				"Auto", "100", "150", "200", "250", "300", "350", "400", "450", "500",
			),
		},
		{
			Name:  "geom:step",
			Tab:   "details",
			Group: "geometry optimization",
			Text:  "Optimization method",
			Help: "Which optimization method should be used for optimization " +
				"convergence. 'Rational function' is probably the best method " +
				"for minimization (followed by 'quasi-Newton') and " +
				"'partitioned Rational function' is probably the best method " +
				"for transition state optimizations. Those probably best are " +
				"the defaults ('Auto').",
			Domain: schema.Map(
				schema.ToNull("Auto"),
				schema.To("Rational function", "step rfo"),
				schema.To("partitioned Rational function", "step prfo"),
				schema.To("quasi-Newton", "step qn"),
				schema.To("GDIIS", "step gdiis"),
			),
			Switch: schema.ShowIf(optTask),
		},
		{
			Name:  "geom:trust",
			Tab:   "details",
			Group: "geometry optimization",
			Text:  "Trust radius",
			Help: "Maximum geometry optimization step to take. Some tests " +
				"showed that 0.2 is probably best when updating trust radii.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.FloatRange(0.1, 0.5, 0.05),
			Default: cty.NumberFloatVal(0.2),
			Switch:  schema.ShowIf(optTask),
		},
		{
			Name:    "geom:update_trust",
			Tab:     "details",
			Group:   "geometry optimization",
			Text:    "Update trust radius",
			Help:    "Whether to update the maximum geometry optimization step.",
			Default: cty.True,
			Switch: schema.ShowIf(
				optTask,
				schema.Isnt("geom:step", "quasi-Newton"),
			),
		},
		{
			Name:   "coordinates used",
			Tab:    "details",
			Group:  "geometry optimization",
			Help:   "Which coordinates should be used for optimization convergence.",
			Domain: schema.Labels("Delocalized"),
			Switch: schema.ShowIf(optTask),
		},
		{
			Name:    "calculate frequencies",
			Tab:     "details",
			Group:   "geometry optimization",
			Help:    "Whether a frequencies calculation should be done after optimization.",
			Default: cty.False,
			Switch:  schema.ShowIf(optTask),
		},
		{
			Name:   "geom:maxiter",
			Tab:    "details",
			Group:  "geometry optimization",
			Text:   "Maximum number of iterations",
			Help:   "Maximum number of geometry optimization iterations.",
			Widget: schema.WidgetSpin,
			Domain: schema.IntRange(30, 300, 10),
			Switch: schema.ShowIf(optTask),
		},
		{
			Name:    "geom:tight",
			Tab:     "details",
			Group:   "geometry optimization",
			Text:    "Tight geometry optimization",
			Help:    "Whether a tight geometry optimization should be done.",
			Default: cty.False,
			Switch:  schema.ShowIf(optTask),
		},
		{
			Name:   "hessian update scheme",
			Tab:    "details",
			Group:  "geometry optimization",
			Help:   "Which Hessian update scheme should be used for optimization convergence.",
			Domain: schema.Labels("Auto", "BFGS", "Bofill", "Powell"),
			Switch: schema.ShowIf(optTask),
		},
		{
			Name:  "initial hessian",
			Tab:   "details",
			Group: "geometry optimization",
			Help: "Which initial model Hessian should be used for optimization " +
				"convergence. 'Swart' is probably the best option, followed by " +
				"'Lindh' and 'Almlöf'.",
			Domain: schema.Map(
				schema.To("Read", "inhess read"),
				schema.To("Calculate", "calc_hess true"),
				schema.To("Swart", "inhess swart"),
				schema.To("Lindh", "inhess lindh"),
				schema.To("Almlöf", "inhess almloef"),
				schema.To("Schlegel", "inhess schlegel"),
				schema.To("Diagonal", "inhess unit"),
			),
			Default: cty.StringVal("Swart"),
			Switch:  schema.ShowIf(optTask),
		},
		{
			Name:    "convergence criteria",
			Tab:     "details",
			Group:   "geometry optimization",
			Help:    "Which convergence criteria should be used for optimization convergence.",
			Domain:  schema.Labels("Loose", "Normal", "Tight", "VeryTight"),
			Default: cty.StringVal("Normal"),
			Switch:  schema.ShowIf(optTask),
		},
		{
			Name:    "freq:restart",
			Tab:     "details",
			Group:   "frequencies",
			Text:    "Restart frequencies calculation",
			Help:    "Whether a frequencies calculation should be restarted.",
			Default: cty.False,
		},
		{
			Name:    "freq:scaling",
			Tab:     "details",
			Group:   "frequencies",
			Text:    "Frequency scaling",
			Help:    "Number to multiply all your frequency values.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.FloatRange(0.95, 1.05, 0.01),
			Default: cty.NumberFloatVal(1.0),
			Kind:    schema.KindFloat, // the whole-number default would infer integer
		},
		{
			Name:   "nuclear model",
			Tab:    "details",
			Group:  "relativity",
			Help:   "Which nuclear model should be used in relativistic approximations.",
			Domain: schema.Labels("Point charge"),
		},
		{
			Name:   "excited states:method",
			Tab:    "details",
			Group:  "excited states calculation",
			Text:   "Excited states calculation method",
			Help:   "Which excitation method to use.",
			Domain: schema.Labels("TD-DFT"),
			Switch: schema.ShowIf(schema.On("excited states")),
		},
		{
			Name:    "tddft:nroots",
			Tab:     "details",
			Group:   "excited states calculation",
			Text:    "Number of excited states",
			Help:    "Number of excited states to consider.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.IntRange(1, 100, 1),
			Default: cty.NumberIntVal(30),
			Switch:  tddft,
		},
		{
			Name:    "tddft:tda",
			Tab:     "details",
			Group:   "excited states calculation",
			Text:    "Tamm-Dancoff approximation",
			Help:    "Whether the Tamm-Dancoff approximation should be used.",
			Default: cty.True,
			Switch:  tddft,
		},
		{
			Name:    "tddft:nto",
			Tab:     "details",
			Group:   "excited states calculation",
			Text:    "Natural transition orbitals",
			Help:    "Whether natural transition orbitals should be calculated.",
			Default: cty.False,
			Switch:  tddft,
		},
		{
			Name:    "tddft:maxdim",
			Tab:     "details",
			Group:   "excited states calculation",
			Text:    "Davidson expansion space",
			Help:    "Size of the Davidson expansion space.",
			Widget:  schema.WidgetSpin,
			Domain:  schema.IntRange(2, 360, 1),
			Default: cty.NumberIntVal(10),
			Switch:  tddft,
		},
		{
			Name: "output:level",
			Tab:  "output",
			Text: "Output level",
			Help: "How much output should be created.",
			Domain: schema.Map(
				schema.To("Mini", "MiniPrint"),
				schema.To("Small", "SmallPrint"),
				schema.To("Normal", "NormalPrint"),
				schema.To("Large", "LargePrint"),
			),
			Default: cty.StringVal("Small"),
		},
		{
			Name:    "output:mos",
			Tab:     "output",
			Text:    "Print molecular orbitals",
			Help:    "Whether molecular orbitals should be printed.",
			Default: cty.True,
		},
		{
			Name:    "output:basis",
			Tab:     "output",
			Text:    "Print basis sets",
			Help:    "Whether basis sets should be printed.",
			Default: cty.True,
			Switch:  schema.ShowIf(schema.Isnt("output:level", "Large")),
		},
		{
			Name:    "wavefunction file",
			Tab:     "output",
			Group:   "analysis",
			Help:    "Whether a wavefunction file (WFN) should be created.",
			Default: cty.False,
		},
	}
}
