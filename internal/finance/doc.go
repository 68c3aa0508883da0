// Package finance computes invoice totals, UAE taxes, project profit/loss and
// period reports for a contracting business.
//
// Every function is pure and total over its inputs. Nothing is validated or
// rounded here: negative, NaN and infinite values propagate arithmetically, and
// callers that need input checks run them before calling in (see package sheet).
package finance
