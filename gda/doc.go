// SPDX-License-Identifier: MIT

// Package gda implements geometric data analysis on lvmat matrices:
// principal component analysis, correspondence analysis and classical
// multidimensional scaling, plus the Euclidean distance matrix they build on.
//
// The numeric core (thin SVD, symmetric eigendecomposition) is delegated to
// gonum/mat; inputs and outputs are lvmat handles, and inputs are read only.
// Component signs are aligned so that the largest-magnitude loading of every
// axis is positive, which makes results reproducible across platforms.
package gda
