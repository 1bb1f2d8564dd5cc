// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Procalc is a programmer's calculator built on a stack. Operands and
operators are pushed in the order they are typed, infix style, and the
stack keeps them in reverse Polish order, honoring operator priorities,
so that nothing is evaluated until a result is asked for.

Usage:

	procalc [options] [file ...]

Flags:

	-base=n
		output base: 0 (auto), 2, 8, 10 or 16
	-precision=i:f
		pad the integer part to i digits and show f fraction digits;
		-1 disables either
	-mode=m
		rendering mode: normal, raw or exp
	-prompt=text
		interactive prompt
	-debug=flag,...
		comma-separated debug flags to enable: stack, tokens
	-e
		execute the arguments as input text
	-demo
		run the demonstration

With no arguments, procalc reads standard input; when that is a terminal
it offers line editing and history. Otherwise it runs the named files in
order.

Typing "=" evaluates the stack, prints the result and leaves it on top,
so the next line can carry on from it. A "#" starts a comment that runs
to the end of the line.

Numbers

Integers have unlimited size. Reals are IEEE-754 doubles, and complex
numbers are pairs of them, written with a trailing j:

	42  -7  0x1f  0o17  0b101  ff
	1.5  .5  2.5e-1  0x1.8  0b0.01
	2j  1.5-2j  0x1e+0x2j

A word made only of hexadecimal digits, such as ff or cafe, is a
hexadecimal number unless it names an operator; e is the constant, so
write 0xe for fourteen. In bases 2, 8 and 16 the exponent is a power of
the base and must carry a sign in hexadecimal: 0x1e+2 is 256.

Results are printed in the output base set by the base command. The
precision pads the integer part and truncates the fraction. In raw mode
reals print as their 64-bit patterns and integers as their two's
complement 64-bit patterns; in exp mode the mantissa is normalized.

Operators

From loosest to tightest binding:

	[                 start of a list for the reducers
	Σ Π μ gμ σ        sum, product, mean, geometric mean, standard deviation
	+ −               addition, subtraction
	× ÷ % divmod      multiplication, division, modulus, quotient and remainder;
	& | ^ &~ << >>    bitwise operations and shifts (integers only) bind the same
	↑                 exponentiation, grouping to the right
	~                 bitwise complement
	sin cos tan asin acos atan ln lg exp sqrt abs neg floor ceil raw unraw
	π e               constants

ASCII spellings are accepted: - * / ** ! for − × ÷ ↑ ~, and the words
sum prod mean gmean sdev pi mod and or xor not shl shr. Full-width
characters, as typed on some keypads, are read as their narrow forms.

Division of integers is exact when it can be and otherwise real.
A negative shift count shifts the other way. The reducers consume every
value back to the most recent [ marker, or the whole stack if there is
none. divmod leaves the quotient on top and the remainder below it.

Special commands

Special commands start with a right parenthesis at the beginning of a
line. Type

	)help

for the list. Among them:

	) base 16        print in hexadecimal
	) precision 4:2  pad to four integer digits, two fraction digits
	) mode raw       show bit patterns
	) stack          show the stack, top first
	) push v [i]     insert a value at a position, ignoring priorities
	) pop [i]        remove and print the entry at a position
	) save           print the converter state
	) restore p m b  restore the converter state
	) save file      write the session, settings and stack, to a file
	) load file      run the commands in a file, such as a saved session
	) demo           run the demonstration
*/
package main
