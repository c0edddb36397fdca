// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// ErrNoSession is returned by the session middleware when the session cookie
// is absent, empty, carries an invalid token, or the token's kind is not
// admitted for the route. All four cases are deliberately indistinguishable
// to the caller. Callers can match against it with [errors.Is].
var ErrNoSession = errors.New("no session")
