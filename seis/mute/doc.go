// Package mute suppresses unwanted regions of trace data.
//
// [Top] and [Bottom] cut early and late arrivals with an optional
// linear taper into the mute, [TimeVariant] fades a time window, and
// [OffsetSection] drops far-offset traces entirely. All functions
// return new data and never modify their input.
package mute
