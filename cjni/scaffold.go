package cjni

func (e *Emitter) systemProperty() {
	e.writef("static jboolean get_system_property(JNIEnv *env, jstring key, jstring def, jstring *res) {\n")
	e.indent++
	e.writef("jclass System_class = (*env)->FindClass(env, \"java/lang/System\");\n")
	e.writef("if (!System_class) {\n")
	e.writef("  return FALSE;\n")
	e.writef("}\n")
	e.writef("jmethodID System_getProperty_methodID = (*env)->GetStaticMethodID(env, System_class, \"getProperty\", \"(Ljava/lang/String;Ljava/lang/String;)Ljava/lang/String;\");\n")
	e.writef("if (!System_getProperty_methodID) {\n")
	e.writef("  return FALSE;\n")
	e.writef("}\n")
	e.writef("*res = (jstring)(*env)->CallStaticObjectMethod(env, System_class, System_getProperty_methodID, key, def);\n")
	e.writef("return TRUE;\n")
	e.indent--
	e.writef("}\n\n")
}

func (e *Emitter) loadSymbols() {
	e.writef("static void *libhandle;\n\n")
	e.writef("static jboolean load_symbols(void) {\n")
	e.writef("#define LOAD_SYMBOL(name) \\\n")
	e.writef("  name = dlsym(libhandle, #name);\n\n")
	e.indent++
	for _, p := range e.unit.Programs {
		if p.Stub {
			e.writef("// LOAD_SYMBOL(%s);\n", p.Symbol)
		} else {
			e.writef("LOAD_SYMBOL(%s);\n", p.Symbol)
		}
	}
	e.indent--
	e.writef("\n#undef LOAD_SYMBOL\n")
	e.writef("  return TRUE;\n")
	e.writef("}\n\n")
}

func (e *Emitter) onLoad() {
	u := e.unit
	e.writef("jint JNI_OnLoad(JavaVM *vm, UNUSED void *reserved) {\n")
	e.indent++
	e.writef("JNIEnv *env;\n")
	e.writef("if ((*vm)->GetEnv(vm, (void**)&env, JNI_VERSION_1_6) != JNI_OK) {\n")
	e.writef("  return -1;\n")
	e.writef("}\n\n")

	for _, f := range u.Fields {
		e.writef("jclass %s_class = (*env)->FindClass(env, %q);\n", f.Wrapper, f.Class)
		e.writef("if (!%s_class) {\n", f.Wrapper)
		e.writef("  return -1;\n")
		e.writef("}\n")
		e.writef("%s = (*env)->GetFieldID(env, %s_class, %q, %q);\n", f.Var(), f.Wrapper, f.Field, f.Signature)
		e.writef("if (!%s) {\n", f.Var())
		e.writef("  return -1;\n")
		e.writef("}\n\n")
	}

	e.writef("jstring property_nativeLibPath;\n")
	e.writef("if (!get_system_property(env, (*env)->NewStringUTF(env, %q), NULL, &property_nativeLibPath)) {\n", u.LibPathKey)
	e.writef("  return -1;\n")
	e.writef("}\n")
	e.writef("jstring property_nativeLib;\n")
	e.writef("if (!get_system_property(env, (*env)->NewStringUTF(env, %q), (*env)->NewStringUTF(env, %q), &property_nativeLib)) {\n", u.LibNameKey, u.DefaultLib)
	e.writef("  return -1;\n")
	e.writef("}\n\n")

	e.writef("char name[1024];\n")
	for i, prop := range []string{"property_nativeLibPath", "property_nativeLib"} {
		if i == 0 {
			e.writef("if (%s) {\n", prop)
		} else {
			e.writef("} else if (%s) {\n", prop)
		}
		e.writef("  const char *utf = (*env)->GetStringUTFChars(env, %s, NULL);\n", prop)
		e.writef("  snprintf(name, sizeof(name), \"%%s\", utf);\n")
		e.writef("  (*env)->ReleaseStringUTFChars(env, %s, utf);\n", prop)
	}
	e.writef("} else {\n")
	e.writef("  return -1;\n")
	e.writef("}\n\n")

	e.writef("libhandle = dlopen(name, RTLD_LAZY | RTLD_GLOBAL);\n")
	e.writef("if (!libhandle) {\n")
	e.writef("  return -1;\n")
	e.writef("}\n\n")
	e.writef("if (!load_symbols()) {\n")
	e.writef("  return -1;\n")
	e.writef("}\n\n")
	e.writef("return JNI_VERSION_1_6;\n")
	e.indent--
	e.writef("}\n\n")
}

func (e *Emitter) onUnload() {
	e.writef("void JNI_OnUnload(UNUSED JavaVM *vm, UNUSED void *reserved) {\n")
	e.writef("  if (libhandle) dlclose(libhandle);\n")
	e.writef("  libhandle = NULL;\n")
	e.writef("}\n")
}
