/*
Package compose implements a deterministic, frame-indexed animation
compositor. Compositions are immutable trees of time-windowed Sequences;
resolving a frame is a pure function of the frame index, so frames can be
computed in any order, concurrently, or repeatedly with identical results.
*/
package compose
