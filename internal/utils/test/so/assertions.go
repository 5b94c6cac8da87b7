package so

import (
	"github.com/smartystreets/assertions"
)

// set of supported assertions
var (
	ShouldEqual                  = assertions.ShouldEqual
	ShouldNotEqual               = assertions.ShouldNotEqual
	ShouldResemble               = assertions.ShouldResemble
	ShouldBeNil                  = assertions.ShouldBeNil
	ShouldNotBeNil               = assertions.ShouldNotBeNil
	ShouldBeEmpty                = assertions.ShouldBeEmpty
	ShouldHaveLength             = assertions.ShouldHaveLength
	ShouldContainSubstring       = assertions.ShouldContainSubstring
	ShouldNotContainSubstring    = assertions.ShouldNotContainSubstring
	ShouldStartWith              = assertions.ShouldStartWith
	ShouldEndWith                = assertions.ShouldEndWith
	ShouldContainKey             = assertions.ShouldContainKey
	ShouldBeGreaterThanOrEqualTo = assertions.ShouldBeGreaterThanOrEqualTo
)
