// Package scaleargs classifies the command line of kubectl-scalex into the
// flags forwarded to kubectl, the target resource, the dry-run switch and the
// scaling expression.
package scaleargs

import (
	"strconv"

	"github.com/giantswarm/kubectl-scalex/pkg/scaleexpr"
)

// Arguments is the result of classifying a command line.
type Arguments struct {
	// PassthroughFlags are forwarded to kubectl in their original order.
	PassthroughFlags []string
	// Target is the resource to scale, e.g. "deployment/api".
	Target string
	// DryRun is set by --dry-run.
	DryRun bool
	// Expression describes how to change the replica count.
	Expression *scaleexpr.Expression
	// HelpRequested is set by --help. Parsing stops at that flag and no
	// other field is validated.
	HelpRequested bool
	// Ignored holds arguments that matched neither a flag, a target nor a
	// scaling expression.
	Ignored []string
}

// Parse classifies args, which must not contain the program name.
//
// Recognized keywords take priority over kubectl flags, kubectl flags over
// "kind/name" targets, and those over scaling expressions. When a target or
// a scaling expression is given more than once, the last one wins.
func Parse(args []string) (Arguments, error) {
	var parsed Arguments

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case dryRunFlag:
			parsed.DryRun = true

		case deploymentKind, statefulSetKind:
			if i+1 >= len(args) {
				return Arguments{}, &Error{Kind: MissingName, Token: arg}
			}
			i++
			parsed.Target = arg + "/" + args[i]

		case replicasFlag:
			if i+1 >= len(args) {
				return Arguments{}, &Error{Kind: MissingFlagValue, Token: arg}
			}
			i++
			replicas, err := strconv.Atoi(args[i])
			if err != nil {
				return Arguments{}, &Error{Kind: InvalidReplicas, Token: args[i]}
			}
			expr := scaleexpr.NewAbsolute(replicas)
			parsed.Expression = &expr

		case helpFlag:
			return Arguments{HelpRequested: true}, nil

		default:
			if isInlineKubeFlag(arg) {
				parsed.PassthroughFlags = append(parsed.PassthroughFlags, arg)
				continue
			}

			if isValuedKubeFlag(arg) {
				if i+1 >= len(args) {
					return Arguments{}, &Error{Kind: MissingFlagValue, Token: arg}
				}
				i++
				parsed.PassthroughFlags = append(parsed.PassthroughFlags, arg, args[i])
				continue
			}

			if _, ok := targetKind(arg); ok {
				parsed.Target = arg
				continue
			}

			if expr, ok := scaleexpr.Parse(arg); ok {
				parsed.Expression = &expr
				continue
			}

			parsed.Ignored = append(parsed.Ignored, arg)
		}
	}

	if parsed.Target == "" {
		return Arguments{}, &Error{Kind: MissingTarget}
	}
	if parsed.Expression == nil {
		return Arguments{}, &Error{Kind: MissingScaleOperation}
	}

	return parsed, nil
}
