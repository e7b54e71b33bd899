// Package render turns typing graphs into TypeScript declarations.
//
// # Overview
//
// A [Strategy] resolves every node of a [typing.Graph] into a type
// expression and folds named sub-types into declarations. [Render] picks the
// strategy named by [Config.Strategy]:
//
//	g, err := typing.Build("All", samples)
//	out, err := render.Render(g, render.DefaultConfig())
//
// # Tree Strategy
//
// [Tree] walks the graph children-first. Every object becomes an
// [Interface] wrapped in a [Namespace] of the same name. A field or array
// with more than one member type registers a union alias in the namespace
// of the owning object, and nested objects move into that namespace:
//
//	export interface All {
//	    user: All.User;
//	    id: All.Id;
//	}
//
//	export namespace All {
//	    export type Id = number
//	        | string;
//
//	    export interface User {
//	        name: string;
//	    }
//	}
//
// Arrays with exactly one member type render as the bare member type unless
// [Config.WrapArrays] is set. Arrays with several member types always render
// as Array<Owner.Alias>.
//
// # Family Strategy
//
// [Family] is reserved and fails with errors.ErrCodeNotImplemented.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the typing graph itself with Graphviz
// for debugging inference results.
//
// [nodelink]: github.com/matzehuels/jsontypings/pkg/render/nodelink
package render
