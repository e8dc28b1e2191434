package twm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber("42"))
	assert.True(t, IsNumber("1.5"))
	assert.True(t, IsNumber("-3"))
	assert.True(t, IsNumber(".5"))

	assert.False(t, IsNumber(""))
	assert.False(t, IsNumber("1px"))
	assert.False(t, IsNumber("1/2"))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger("42"))
	assert.True(t, IsInteger("-3"))

	assert.False(t, IsInteger("1.5"))
	assert.False(t, IsInteger(""))
	assert.False(t, IsInteger("full"))
}

func TestIsFraction(t *testing.T) {
	assert.True(t, IsFraction("1/2"))
	assert.True(t, IsFraction("11/12"))

	assert.False(t, IsFraction("1/"))
	assert.False(t, IsFraction("/2"))
	assert.False(t, IsFraction("1.5/2"))
}

func TestIsPercent(t *testing.T) {
	assert.True(t, IsPercent("50%"))
	assert.True(t, IsPercent("2.5%"))

	assert.False(t, IsPercent("50"))
	assert.False(t, IsPercent("%"))
}

func TestIsTshirtSize(t *testing.T) {
	assert.True(t, IsTshirtSize("sm"))
	assert.True(t, IsTshirtSize("xl"))
	assert.True(t, IsTshirtSize("2xl"))
	assert.True(t, IsTshirtSize("2.5xl"))

	assert.False(t, IsTshirtSize("sm2"))
	assert.False(t, IsTshirtSize("medium"))
}

func TestIsLength(t *testing.T) {
	assert.True(t, IsLength("4"))
	assert.True(t, IsLength("1.5"))
	assert.True(t, IsLength("px"))
	assert.True(t, IsLength("full"))
	assert.True(t, IsLength("screen"))
	assert.True(t, IsLength("1/2"))

	assert.False(t, IsLength("auto"))
	assert.False(t, IsLength("[4px]"))
}

func TestIsArbitraryValue(t *testing.T) {
	assert.True(t, IsArbitraryValue("[4px]"))
	assert.True(t, IsArbitraryValue("[length:var(--x)]"))
	assert.True(t, IsArbitraryValue("[#bada55]"))

	assert.False(t, IsArbitraryValue("4px"))
	assert.False(t, IsArbitraryValue("[]"))
	assert.False(t, IsArbitraryValue("(--x)"))
}

func TestIsArbitraryVariable(t *testing.T) {
	assert.True(t, IsArbitraryVariable("(--spacing)"))
	assert.True(t, IsArbitraryVariable("(color:--brand)"))

	assert.False(t, IsArbitraryVariable("[--spacing]"))
	assert.False(t, IsArbitraryVariable("--spacing"))
}

func TestIsAnyNonArbitrary(t *testing.T) {
	assert.True(t, IsAnyNonArbitrary("red-500"))
	assert.True(t, IsAnyNonArbitrary("whatever"))

	assert.False(t, IsAnyNonArbitrary("[4px]"))
	assert.False(t, IsAnyNonArbitrary("(--x)"))
}

func TestIsArbitraryLength(t *testing.T) {
	assert.True(t, IsArbitraryLength("[12px]"))
	assert.True(t, IsArbitraryLength("[2rem]"))
	assert.True(t, IsArbitraryLength("[calc(100%-1rem)]"))
	assert.True(t, IsArbitraryLength("[length:var(--x)]"))
	assert.True(t, IsArbitraryLength("[0]"))

	assert.False(t, IsArbitraryLength("[#bada55]"))
	assert.False(t, IsArbitraryLength("[rgba(0,0,0,0.3)]"))
	assert.False(t, IsArbitraryLength("[number:12]"))
}

func TestIsArbitraryNumber(t *testing.T) {
	assert.True(t, IsArbitraryNumber("[42]"))
	assert.True(t, IsArbitraryNumber("[1.5]"))
	assert.True(t, IsArbitraryNumber("[number:var(--x)]"))

	assert.False(t, IsArbitraryNumber("[12px]"))
}

func TestIsArbitraryPosition(t *testing.T) {
	assert.True(t, IsArbitraryPosition("[position:200px_100px]"))

	assert.False(t, IsArbitraryPosition("[200px_100px]"))
	assert.False(t, IsArbitraryPosition("[size:200px]"))
}

func TestIsArbitrarySize(t *testing.T) {
	assert.True(t, IsArbitrarySize("[size:200px_100px]"))
	assert.True(t, IsArbitrarySize("[length:200px]"))
	assert.True(t, IsArbitrarySize("[percentage:25%]"))

	assert.False(t, IsArbitrarySize("[200px_100px]"))
}

func TestIsArbitraryImage(t *testing.T) {
	assert.True(t, IsArbitraryImage("[url('/img.png')]"))
	assert.True(t, IsArbitraryImage("[image:var(--x)]"))
	assert.True(t, IsArbitraryImage("[linear-gradient(to_right,red,blue)]"))

	assert.False(t, IsArbitraryImage("[#bada55]"))
}

func TestIsArbitraryShadow(t *testing.T) {
	assert.True(t, IsArbitraryShadow("[inset_0_1px_0,inset_0_-1px_0]"))
	assert.True(t, IsArbitraryShadow("[0_35px_60px_-15px_rgba(0,0,0,0.3)]"))
	assert.True(t, IsArbitraryShadow("[0_0_#00f]"))
	assert.True(t, IsArbitraryShadow("[.5rem_0_rgba(5,5,5,5)]"))
	assert.True(t, IsArbitraryShadow("[-.5rem_0_#123456]"))
	assert.True(t, IsArbitraryShadow("[0.5rem_-0.005vh_#123456]"))
	assert.True(t, IsArbitraryShadow("[0.5rem_-0.005vh]"))

	assert.False(t, IsArbitraryShadow("[rgba(5,5,5,5)]"))
	assert.False(t, IsArbitraryShadow("[#00f]"))
	assert.False(t, IsArbitraryShadow("[something-else]"))
}

func TestIsArbitraryVariableLabelled(t *testing.T) {
	assert.True(t, IsArbitraryVariableLength("(length:--x)"))
	assert.False(t, IsArbitraryVariableLength("(--x)"))

	assert.True(t, IsArbitraryVariableFamilyName("(family-name:--font)"))
	assert.False(t, IsArbitraryVariableFamilyName("(length:--font)"))

	assert.True(t, IsArbitraryVariableShadow("(shadow:--x)"))
	assert.True(t, IsArbitraryVariableShadow("(--x)"))
	assert.False(t, IsArbitraryVariableShadow("(color:--x)"))
}
