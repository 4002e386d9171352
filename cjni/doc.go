// Package cjni renders ir units as C translation units against the JNI API.
//
// The output for a library contains, per program, the native function
// pointer, a capability probe Java_<class>_has_1<name> and the call entry
// point Java_<class>_<name>K, followed by the property lookup helper,
// the symbol binding loop, JNI_OnLoad and JNI_OnUnload.
//
// Bodies keep the single cleanup label form C requires: every fallible
// acquisition sets __failed and jumps to done, and the releases after the
// label run on every path.
package cjni
