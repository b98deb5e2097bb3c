// Package prefkit models named, strongly-typed configuration values
// ("preferences") organized into nested groups and stores, validates every
// assignment through a three-stage pipeline, and round-trips the whole tree
// through a commented JSON (JSONC) document.
//
// Key Features:
//
//   - Typed preference kinds (Bool, Int, Float, String, Duration, Enum) built
//     through fluent builders
//   - Every value and default assignment runs a Pre → IsValid → Post pipeline
//     with reusable validation presets
//   - Allowed-value lists with an undefined-value policy, including
//     defined-and-nonzero broadening for flags enumerations
//   - Stage-classified errors: every failure names the preference and the
//     pipeline phase that rejected it
//   - Ordered groups and dotted-path stores with dynamic, coercing access
//   - Deterministic JSONC encoding with descriptions, allowed values and
//     defaults as comments, and tolerant JSONC decoding
//
// Basic Usage:
//
//	maxConns := prefkit.NewInt("maxConns").
//		Description("Maximum number of concurrent connections.").
//		Processor(validity.IsGreaterThanZero[int64]()).
//		Default(3).
//		MustBuild()
//
//	mode := prefkit.NewString("mode").
//		Description("Server mode.").
//		AllowedValues("fast", "safe").
//		Default("safe").
//		MustBuild()
//
//	server := prefkit.MustNewGroup("server").WithDescription("Server tuning.")
//	_ = server.Add(maxConns, mode)
//
//	store := prefkit.MustNewStore("app")
//	_ = store.AddGroup(server)
//
//	if err := store.Set("server.maxConns", 10); err != nil {
//		// err is a *validity.SetValueError naming the stage that failed
//	}
//
//	doc, _ := store.MarshalJSONC()
//
// Validation:
//
// Each preference carries a validity.Processor with three independently
// substitutable steps. Pre normalizes the candidate, IsValid accepts or
// rejects it, Post shapes the stored value. Preset factories cover the common
// rules:
//
//	retries := prefkit.NewInt("retries").
//		Processor(validity.IsNotNegative[int64]()).
//		Default(2).
//		MustBuild()
//
//	greeting := prefkit.NewString("greeting").
//		Pre(validity.TrimSpacePre[string]()).
//		IsValid(validity.IsNotEmptyOrWhitespace[string]().IsValid).
//		MustBuild()
//
// Assigning nil (SetPtr(nil), Clear, or a JSON null in the document) always
// succeeds and unsets the value; unsetting is legal under every configuration.
//
// Enumerations:
//
// Enum preferences bind an enums.Type descriptor that supplies member names,
// parsing and formatting. When undefined values are disallowed and no explicit
// allowed list is given, the builder restricts the preference to the type's
// defined members; flags types additionally accept any nonzero combination of
// defined bits:
//
//	var Perms = enums.MustNewFlags("Perm",
//		enums.Def(PermRead, "Read"),
//		enums.Def(PermWrite, "Write"),
//	)
//
//	perm := prefkit.NewEnum(Perms, "permissions").
//		Default(PermRead).
//		MustBuild()
//
//	_ = perm.Set(PermRead | PermWrite) // defined and nonzero, accepted
//
// Error Handling:
//
// Every failure crossing a setter, a builder or the codec is a
// *validity.SetValueError carrying the preference name, the pipeline stage and
// the underlying cause. Inspect failures with errors.As, validity.StageOf or
// the Is* helpers; stages distinguish a rejected candidate (StageValidityCheck)
// from a malformed document value (StageProcessingType, StageConverting,
// StageParsing) and from a misconfigured preference (StageUnknown).
//
// The library follows these principles:
//   - Configuration and use are temporally separated: build first, then read
//     and assign without locks on the value path
//   - Validation is pure: processors and policies own no state and may be
//     shared across preferences
//   - The document format is for humans: stable order, comments, tolerant
//     parsing
package prefkit
