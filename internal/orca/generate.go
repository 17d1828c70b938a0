package orca

import (
	"sort"
	"strconv"
	"strings"

	"github.com/groblegark/orcinus/internal/form"
)

// Auxiliary basis sets with published correlation- and Coulomb-fitting
// variants. Combinations outside these tables fall back to AutoAux.
var (
	ccJKBases = map[string]bool{
		"cc-pVTZ": true, "aug-cc-pVTZ": true,
		"cc-pVQZ": true, "aug-cc-pVQZ": true,
		"cc-pV5Z": true, "aug-cc-pV5Z": true,
	}
	def2CBases = map[string]bool{
		"def2-SVP": true, "def2-TZVP": true, "def2-TZVPP": true, "def2-QZVPP": true,
	}
	ccCBases = map[string]bool{
		"cc-pVDZ": true, "aug-cc-pVDZ": true,
		"cc-pVTZ": true, "aug-cc-pVTZ": true,
		"cc-pVQZ": true, "aug-cc-pVQZ": true,
		"cc-pV5Z": true, "aug-cc-pV5Z": true,
		"cc-pV6Z": true, "aug-cc-pV6Z": true,
	}
)

// Convergence keywords by numerical quality tier. Tier 0 keeps the program
// default and emits nothing.
var scfKeywords = map[int64]string{
	-1: "LooseSCF",
	1:  "TightSCF",
	2:  "TightSCF",
	3:  "VeryTightSCF",
	4:  "ExtremeSCF",
}

// Generate maps a translated answer set onto an input document. It is
// total: a combination it has no opinion about contributes nothing instead
// of failing, so any reachable answer set renders.
func Generate(v form.Values) *Input {
	in := NewInput()

	spin := v.Int("spin")
	if spin == 0 {
		spin = 1
	}
	in.Add(SectionGeometry, "xyzfile",
		strconv.FormatInt(v.Int("charge"), 10),
		strconv.FormatInt(spin, 10),
		"init.xyz")

	if v.Truthy("unrestricted") {
		if th := v.String("theory"); th == "DFTB" || th == "DFT" {
			in.Add(SectionKeywords, "UKS")
		} else {
			in.Add(SectionKeywords, "UHF")
		}
	}

	// How two-electron integrals are approximated. Empty means the program
	// decides; "NoRI" asks for the exact integrals.
	ri := ""
	if v.String("theory") != "DFTB" {
		switch {
		case !v.Truthy("ri") && !v.Truthy("dlpno"):
			ri = "NoRI"
		case v.String("theory") == "DFT" && strings.Contains(v.String("dft:family"), "gga"):
			ri = "RI"
		case v.String("ri:hf") != "" && v.String("ri:hf") != "Auto":
			ri = v.String("ri:hf")
		}
	}
	useAuxJ := ri == "RI" || ri == "RIJONX" || ri == "RIJDX" || ri == "RIJCOSX"
	useAuxJK := ri == "RIJK"
	useAuxC := false

	theory := v.String("theory")
	switch theory {
	case "DFTB":
		theory = v.String("dftb:hamiltonian")
	case "DFT":
		theory = v.String("dft:" + v.String("dft:family"))
	}

	if theory == "MP2" || theory == "CCSD" ||
		(v.String("theory") == "DFT" && strings.Contains(v.String("dft:family"), "double-hybrid")) {
		if v.Truthy("dlpno") {
			theory = "DLPNO-" + theory
			useAuxC = true
		} else if ri != "" && ri != "NoRI" {
			theory = "RI-" + theory
			useAuxC = true
		}
	}

	if v.String("theory") == "CCSD" && v.Truthy("triples correction") {
		theory += "(T)"
	}

	useNumFreq := v.Truthy("relativity") ||
		ri == "RIJK" ||
		v.String("theory") == "DFTB" ||
		(v.String("theory") == "DFT" &&
			(strings.Contains(v.String("dft:family"), "meta-gga") ||
				strings.Contains(v.String("dft:family"), "double-hybrid")))
	useNumGrad := v.String("theory") == "CCSD"

	in.Add(SectionKeywords, theory)
	in.Add(SectionKeywords, v.String("dispersion"))
	in.Add(SectionKeywords, v.String("relativity"))
	if v.String("theory") != "DFTB" {
		in.Add(SectionKeywords, v.String("basis:"+v.String("basis:family")))
	}

	in.Add(SectionKeywords, ri)
	if ri != "NoRI" {
		auxbas := make(map[string]bool)
		if useAuxJ {
			if v.String("basis:family") == "def2" {
				if !v.Truthy("relativity") {
					auxbas["def2/J"] = true
				} else {
					auxbas["SARC/J"] = true
				}
			} else {
				auxbas["AutoAux"] = true
			}
		}

		if useAuxJK {
			switch v.String("basis:family") {
			case "def2":
				auxbas["def2/JK"] = true
			case "cc":
				if ccJKBases[v.String("basis:cc")] {
					auxbas[v.String("basis:cc")+"/JK"] = true
				} else {
					auxbas["AutoAux"] = true
				}
			default:
				auxbas["AutoAux"] = true
			}
		}

		if useAuxC {
			switch v.String("basis:family") {
			case "def2":
				if def2CBases[v.String("basis:def2")] {
					auxbas[v.String("basis:def2")+"/C"] = true
				} else {
					auxbas["AutoAux"] = true
				}
			case "cc":
				if ccCBases[v.String("basis:cc")] {
					auxbas[v.String("basis:cc")+"/C"] = true
				} else {
					auxbas["AutoAux"] = true
				}
			default:
				auxbas["AutoAux"] = true
			}
		}

		// AutoAux already covers every fitting role, so it replaces any
		// specific sets it was chosen alongside.
		if auxbas["AutoAux"] {
			in.Add(SectionKeywords, "AutoAux")
		} else {
			names := make([]string, 0, len(auxbas))
			for name := range auxbas {
				names = append(names, name)
			}
			sort.Strings(names)
			in.Add(SectionKeywords, names...)
		}
	}

	if th := v.String("theory"); th == "MP2" || th == "CCSD" {
		in.Add(SectionKeywords, v.String("frozen core"))
	}
	in.Add(SectionKeywords, v.String("uco"))

	task := v.String("task")
	if useNumGrad && strings.Contains(task, "Opt") {
		task = strings.ReplaceAll(task, "Opt", "Opt NumGrad")
	}
	if useNumFreq && strings.Contains(task, "Freq") {
		task = strings.ReplaceAll(task, "Freq", "NumFreq")
	}
	if task != "Energy" {
		in.Add(SectionKeywords, task)
	}

	if n := v.Int("nprocs"); n > 0 {
		in.Addf(SectionMaxcore, "%d", v.Int("memory")/n)
	}

	if v.Truthy("solvation") {
		model := "gbsa"
		if v.String("theory") != "DFTB" {
			model = strings.ToLower(v.String("solvation:model"))
		}
		solvent := strings.ToLower(v.String("solvation:" + model))
		if model == "cpcm" {
			in.Addf(SectionKeywords, "CPCM(%s)", solvent)
		} else {
			in.Add("cpcm", "smd true")
			in.Addf("cpcm", "smdsolvent %q", solvent)
		}
	}

	if v.Truthy("geom:tight") {
		in.Add(SectionKeywords, "TightOpt")
	}

	quality := v.Int("numerical:quality")
	if quality != 0 {
		in.Add(SectionKeywords, scfKeywords[quality])
	}

	if v.String("theory") == "DFT" {
		n := quality + 3
		if v.String("excited states:method") == "TD-DFT" {
			n++
		}
		in.Addf(SectionKeywords, "Grid%d", n)
		if n > 6 {
			in.Add(SectionKeywords, "NoFinalGrid")
		} else {
			in.Addf(SectionKeywords, "FinalGrid%d", n+1)
		}
	}
	if ri == "RIJCOSX" {
		n := quality + 3
		if strings.Contains(task, "Opt") && strings.Contains(theory, "DLPNO-MP2") {
			n += 3
		} else if v.String("excited states:method") == "TD-DFT" {
			n++
		}
		if n > 3 {
			if n > 9 {
				n = 9
			}
			in.Addf(SectionKeywords, "GridX%d", n)
		}
	}

	level := v.String("output:level")
	if level != "SmallPrint" {
		in.Add(SectionKeywords, level)
	}
	if v.Truthy("output:basis") && level != "LargePrint" {
		in.Add(SectionKeywords, "PrintBasis")
	}
	if v.Truthy("output:mos") && level != "LargePrint" {
		in.Add(SectionKeywords, "PrintMOs")
	} else if !v.Truthy("output:mos") && level == "LargePrint" {
		in.Add(SectionKeywords, "NoPrintMOs")
	}
	if v.Truthy("nbo") {
		in.Add(SectionKeywords, "NBO")
	}

	if desc := v.String("short description"); desc != "" {
		in.Add(SectionComment, desc)
	}

	if s := v.String("scf:maxiter"); s != "" && s != "Auto" {
		in.Addf("scf", "maxiter %s", s)
	}
	if n := v.Int("geom:maxiter"); n != 0 {
		in.Addf("geom", "maxiter %d", n)
	}

	in.Add("geom", v.String("geom:step"))
	if trust := v.Float("geom:trust"); trust != 0 {
		r := -trust
		if v.String("geom:step") != "step qn" && v.Truthy("geom:update_trust") {
			r = -r
		}
		in.Addf("geom", "trust %s", ftoa(r))
	}

	if h := v.String("initial hessian"); h != "" {
		in.Add("geom", h)
		if h == "inhess read" {
			in.Add("geom", `inhessname "freq.hess"`)
		}
		if h == "calc_hess true" && useNumFreq {
			in.Add("geom", "numhess true")
		}
	}

	if v.Truthy("freq:restart") {
		in.Add("freq", "restart true")
	}
	if f := v.Float("freq:scaling"); f != 0 && f != 1.0 {
		in.Addf("freq", "scalfreq %s", ftoa(f))
	}

	if n := v.Int("nprocs"); n > 1 {
		in.Addf("pal", "nprocs %d", n)
	}

	if v.Truthy("excited states") && v.String("excited states:method") == "TD-DFT" {
		in.Addf("tddft", "nroots %d", v.Int("tddft:nroots"))
		in.Addf("tddft", "maxdim %d", v.Int("tddft:maxdim"))
		if !v.Truthy("tddft:tda") {
			in.Add("tddft", "tda false")
		}
		if v.Truthy("tddft:nto") {
			in.Add("tddft", "donto true")
		}
	}

	return in
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
